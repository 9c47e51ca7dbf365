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

//go:build linux

package fd

import "golang.org/x/sys/unix"

// O_LARGEFILE is ORed into the flags of every open(2) issued by this
// package. It is required on 32-bit Linux to access files larger than
// 2GiB and ignored on 64-bit Linux.
const O_LARGEFILE = unix.O_LARGEFILE
