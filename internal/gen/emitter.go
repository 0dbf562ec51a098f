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

package gen

import (
	"fmt"
	"strings"

	"github.com/ajroetker/neonapi/internal/strategy"
)

// IncludeDirective returns the line that pulls in the primitive provider.
func IncludeDirective(header string) string {
	return fmt.Sprintf("#include %q", header)
}

// FormatDecl renders one signature as an inline C++ wrapper that forwards
// its operands to namespace::primitive:
//
//	inline int16x8_t vaddl_s8(int8x8_t const& a0, int8x8_t const& a1) { return neon::vaddl(a0, a1); }
func FormatDecl(sig strategy.Signature, namespace string) string {
	params := make([]string, len(sig.Params))
	args := make([]string, len(sig.Params))
	for i, p := range sig.Params {
		params[i] = p.Type.Name() + " const& " + p.Name
		args[i] = p.Name
	}

	callee := namespace + "::" + sig.Primitive
	if sig.Template != nil {
		callee += "<" + sig.Template.Name() + ">"
	}

	return fmt.Sprintf("inline %s %s(%s) { return %s(%s); }",
		sig.Result.Name(), sig.Name, strings.Join(params, ", "), callee, strings.Join(args, ", "))
}
