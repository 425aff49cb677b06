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

package version

import (
	"fmt"
	"runtime"
	"strings"
)

const Name = "linkedds"

// set by -ldflags at build time
var (
	Version   = "0.1.0"
	Commit    string
	BuildDate string
)

// Short returns "name version (commit)".
func Short() string {
	if Commit == "" {
		return fmt.Sprintf("%s %s", Name, Version)
	}
	return fmt.Sprintf("%s %s (%s)", Name, Version, Commit)
}

// GetVersionDetail returns a string with version, commit hash, build time, and OS/Arch details.
func GetVersionDetail() string {
	versionDetail := fmt.Sprintf(`
%s
version:   %s
commit:    %s
buildtime: %s
os/arch:   %s/%s
go:        %s`,
		Name,
		Version,
		Commit,
		BuildDate,
		runtime.GOOS,
		runtime.GOARCH,
		runtime.Version())

	return strings.TrimSpace(versionDetail)
}
