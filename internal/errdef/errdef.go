// Copyright 2024 Qian Yao
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errdef

import "github.com/pkg/errors"

// Container conditions. Operations wrap these with context, so compare
// with errors.Is.
var (
	ErrEmpty       = errors.New("container is empty")
	ErrNotFound    = errors.New("not found")
	ErrOutOfBounds = errors.New("index out of bounds")
)

// Shell conditions.
var (
	ErrUnknownCommand         = errors.New("unknown command")
	ErrWrongNumberOfArguments = errors.New("wrong number of arguments")
	ErrInvalidArgument        = errors.New("invalid argument")
)
