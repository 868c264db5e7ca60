// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ops

import (
	"testing"

	"github.com/arcane-engine/arcane/bridge"
)

func TestCreateShaderAllocatesIncreasingIDsAndQueues(t *testing.T) {
	b := bridge.NewState()
	a := CreateShader(b, "tint", "fn main() {}")
	c := CreateShader(b, "wave", "fn main() {}")
	if a == c {
		t.Error("distinct CreateShader calls should return distinct ids")
	}
	if len(b.ShaderCreates) != 2 {
		t.Fatalf("len(ShaderCreates) = %d, want 2", len(b.ShaderCreates))
	}
}

func TestSetShaderParamQueuesUpdate(t *testing.T) {
	b := bridge.NewState()
	id := CreateShader(b, "tint", "fn main() {}")
	SetShaderParam(b, id, 0, 1, 2, 3, 4)
	if len(b.ShaderParams) != 1 {
		t.Fatalf("len(ShaderParams) = %d, want 1", len(b.ShaderParams))
	}
	p := b.ShaderParams[0]
	if p.Shader != id || p.Index != 0 || p.X != 1 || p.Y != 2 || p.Z != 3 || p.W != 4 {
		t.Errorf("ShaderParams[0] = %+v, unexpected", p)
	}
}
