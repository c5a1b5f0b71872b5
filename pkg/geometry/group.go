package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Group is an ordered collection of shapes tested by linear scan
type Group struct {
	Shapes []Shape
}

// NewGroup creates a group from the given shapes
func NewGroup(shapes ...Shape) *Group {
	return &Group{Shapes: shapes}
}

// Add appends shapes to the group
func (g *Group) Add(shapes ...Shape) {
	g.Shapes = append(g.Shapes, shapes...)
}

// Len returns the number of direct children
func (g *Group) Len() int {
	return len(g.Shapes)
}

// Hit tests every child against the same record so the nearest hit wins.
// There is no early exit: a later child may be closer than an earlier one.
func (g *Group) Hit(ray core.Ray, tMin float64, hit *material.HitRecord) bool {
	hitAnything := false
	for _, shape := range g.Shapes {
		if shape.Hit(ray, tMin, hit) {
			hitAnything = true
		}
	}
	return hitAnything
}

// Validate validates every child
func (g *Group) Validate() error {
	for i, shape := range g.Shapes {
		if err := Validate(shape); err != nil {
			return fmt.Errorf("group child %d: %w", i, err)
		}
	}
	return nil
}

// CountPrimitives returns the number of leaf primitives reachable from shape.
// Instanced shapes are counted once per reference.
func CountPrimitives(shape Shape) int {
	switch s := shape.(type) {
	case *Group:
		count := 0
		for _, child := range s.Shapes {
			count += CountPrimitives(child)
		}
		return count
	case *TriangleMesh:
		return CountPrimitives(s.Group)
	case *Transform:
		return CountPrimitives(s.Child)
	case nil:
		return 0
	default:
		return 1
	}
}
