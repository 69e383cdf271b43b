package geometry

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// HittableList is an ordered collection of shapes searched linearly
type HittableList struct {
	Shapes []core.Shape
}

// NewHittableList creates a list containing shapes
func NewHittableList(shapes ...core.Shape) *HittableList {
	return &HittableList{Shapes: shapes}
}

// Add appends shapes to the list
func (l *HittableList) Add(shapes ...core.Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// Len returns the number of shapes in the list
func (l *HittableList) Len() int {
	return len(l.Shapes)
}

// Hit returns the closest hit among all shapes within (tMin, tMax)
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float32) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
