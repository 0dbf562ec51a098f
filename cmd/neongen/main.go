// Copyright 2025 go-highway Authors
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

// Command neongen generates typed NEON intrinsic wrappers over the neon::
// primitive library.
//
// Usage:
//
//	neongen > neon_api.h                       # built-in table to stdout
//	neongen --out neon_api.h --table ops.yaml  # custom table
//	neongen list                               # show the operation table
//
// Each operation in the table expands into one inline declaration per
// element type and register width, for example:
//
//	inline int16x8_t vaddl_s8(int8x8_t const& a0, int8x8_t const& a1) { return neon::vaddl(a0, a1); }
//
// The output starts with a single #include of the provider header.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
