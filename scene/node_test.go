// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/meshstack/base/tolassert"
	"cogentcore.org/meshstack/math32"
	"cogentcore.org/meshstack/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skids draws two landing skids on struts, as nested calls.
func skids(ctx *Context) error {
	ctx.SetColor(0.7, 0.3, 0.5)
	for _, z := range []float32{0.2, -0.2} {
		err := ctx.Group(func() error {
			ctx.Stack.Translate(0, 0, z)
			ctx.Stack.RotateX(-30)
			ctx.Stack.RotateZ(-45)
			ctx.Stack.Scale(1, 0.03, 0.03)
			return ctx.Draw("cylinder")
		})
		if err != nil {
			return err
		}
	}
	return ctx.Group(func() error {
		ctx.Stack.Translate(0, 0.4, 0)
		ctx.Stack.RotateY(90)
		ctx.SetColor(1, 0, 1)
		return ctx.Draw("sphere")
	})
}

// skidsTree is the same model as skids, as a node tree.
func skidsTree() *Node {
	root := NewNode("skids", "").SetColor(0.7, 0.3, 0.5)
	for _, z := range []float32{0.2, -0.2} {
		root.AddChild(NewNode("skid", "cylinder").SetPos(0, 0, z).SetRot(-30, 0, -45).SetScale(1, 0.03, 0.03))
	}
	root.AddChild(NewNode("cabin", "sphere").SetPos(0, 0.4, 0).SetRot(0, 90, 0).SetColor(1, 0, 1))
	return root
}

func TestNodeMatchesCalls(t *testing.T) {
	view := math32.LookAt(math32.Vec3(1, 0.5, 1), math32.Vec3(-5, -2.5, -5), math32.Vec3(0, 1, 0))

	ctx, calls := newTestContext(t)
	require.NoError(t, ctx.Frame(view, func() error {
		ctx.Stack.Scale(2, 2, 2)
		return skids(ctx)
	}))

	tctx, tree := newTestContext(t)
	root := NewNode("root", "").SetScale(2, 2, 2).AddChild(skidsTree())
	require.NoError(t, tctx.Frame(view, func() error {
		return root.Render(tctx)
	}))

	require.Len(t, tree.Calls, len(calls.Calls))
	for i, c := range calls.Calls {
		tc := tree.Calls[i]
		assert.Equal(t, c.Mesh, tc.Mesh)
		assert.Equal(t, c.Color, tc.Color)
		tolassert.EqualTolMatrix4(t, c.ModelView, tc.ModelView, tol, "call %d", i)
	}
	assert.Equal(t, 5, root.NumNodes())
	assert.Equal(t, math32.Vec3(1, 1, 1), tctx.Color)
}

func TestNodeMissingMesh(t *testing.T) {
	ctx, _ := newTestContext(t)
	root := NewNode("root", "").AddChild(NewNode("a", "cube"), NewNode("b", "teapot"))
	err := ctx.Frame(math32.Identity4(), func() error {
		return root.Render(ctx)
	})
	assert.ErrorIs(t, err, shape.ErrMeshNotFound)
	assert.Equal(t, 1, ctx.Stack.Depth())
}

func TestNodeClone(t *testing.T) {
	orig := skidsTree()
	cp := orig.Clone()
	require.NotNil(t, cp)
	assert.Equal(t, "skids", cp.Name)
	assert.Equal(t, orig.NumNodes(), cp.NumNodes())
	assert.Equal(t, *orig.Color, *cp.Color)
	assert.Equal(t, orig.Children[1].Pos, cp.Children[1].Pos)
	assert.Equal(t, orig.Children[1].Matrix(), cp.Children[1].Matrix())

	cp.SetPos(5, 5, 5)
	cp.Color.Set(0, 0, 0)
	cp.Children[0].Mesh = "cube"
	cp.Children[2].Color.Set(0, 1, 0)
	cp.AddChild(NewNode("extra", "cube"))

	assert.Equal(t, math32.Vector3{}, orig.Pos)
	assert.Equal(t, math32.Vec3(0.7, 0.3, 0.5), *orig.Color)
	assert.Equal(t, "cylinder", orig.Children[0].Mesh)
	assert.Equal(t, math32.Vec3(1, 0, 1), *orig.Children[2].Color)
	assert.Len(t, orig.Children, 3)
	assert.Nil(t, orig.Children[0].Color)
}

func TestPrefabs(t *testing.T) {
	var pf Prefabs
	pf.Add(skidsTree())
	pf.Add(NewNode("box", "cube"))
	assert.Equal(t, []string{"skids", "box"}, pf.Names())

	a, err := pf.Instance("skids")
	require.NoError(t, err)
	b, err := pf.Instance("skids")
	require.NoError(t, err)
	a.SetPos(1, 0, 0)
	b.SetPos(-1, 0, 0)
	assert.NotEqual(t, a.Pos, b.Pos)

	ctx, rc := newTestContext(t)
	require.NoError(t, ctx.Frame(math32.Identity4(), func() error {
		if err := a.Render(ctx); err != nil {
			return err
		}
		return b.Render(ctx)
	}))
	assert.Len(t, rc.Calls, 6)
	tolassert.EqualTolVector3(t, math32.Vec3(1, 0.4, 0), rc.Calls[2].ModelView.Translation(), tol)
	tolassert.EqualTolVector3(t, math32.Vec3(-1, 0.4, 0), rc.Calls[5].ModelView.Translation(), tol)

	_, err = pf.Instance("tank")
	assert.ErrorIs(t, err, ErrPrefabNotFound)
}
