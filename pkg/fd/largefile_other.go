// Copyright 2026 The hostio Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !linux && !windows

package fd

// O_LARGEFILE is a Linux-specific open(2) flag. On the BSDs and Darwin,
// large file support is implicit and the flag does not exist, so it is
// defined as 0 here to let the common open path OR it in unconditionally.
const O_LARGEFILE = 0
