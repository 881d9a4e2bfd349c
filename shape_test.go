package wangtile

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeValidate(t *testing.T) {
	cases := []struct {
		name  string
		shape CollisionShape
		ok    bool
	}{
		{"none", NoShape(), true},
		{"rect", Rectangle(0, 16, 32, 16), true},
		{"polygon", Polygon(lShape()...), true},
		{"triangle", Polygon(Point{0, 0}, Point{32, 0}, Point{0, 32}), true},
		{"two points", Polygon(Point{0, 0}, Point{32, 0}), false},
		{"no points", Polygon(), false},
		{"nan point", Polygon(Point{0, 0}, Point{math.NaN(), 0}, Point{0, 32}), false},
		{"inf point", Polygon(Point{0, 0}, Point{32, math.Inf(1)}, Point{0, 32}), false},
		{"zero width", Rectangle(0, 0, 0, 32), false},
		{"negative height", Rectangle(0, 0, 32, -1), false},
		{"inf rect", Rectangle(math.Inf(-1), 0, 32, 32), false},
		{"bad kind", CollisionShape{Kind: 9}, false},
	}

	for _, c := range cases {
		err := c.shape.Validate()
		if c.ok {
			assert.NoError(t, err, c.name)
		} else {
			assert.True(t, errors.Is(err, ErrInvalidShape), c.name)
		}
	}
}

func TestShapeOutlineAndBounds(t *testing.T) {
	r := Rectangle(16, 0, 16, 32)
	assert.Equal(t, []Point{{16, 0}, {32, 0}, {32, 32}, {16, 32}}, r.Outline())
	assert.Equal(t, Rect{16, 0, 16, 32}, r.Bounds())

	p := Polygon(Point{16, 16}, Point{16, 0}, Point{32, 0}, Point{32, 32}, Point{0, 32}, Point{0, 16})
	assert.Len(t, p.Outline(), 6)
	assert.Equal(t, Rect{0, 0, 32, 32}, p.Bounds())

	assert.Nil(t, NoShape().Outline())
	assert.Equal(t, Rect{}, NoShape().Bounds())
}

func TestShapeEqual(t *testing.T) {
	assert.True(t, NoShape().Equal(CollisionShape{}))
	assert.True(t, Polygon(lShape()...).Equal(Polygon(lShape()...)))
	assert.False(t, Polygon(lShape()...).Equal(Polygon(lShape()[:5]...)))
	assert.False(t, Rectangle(0, 0, 1, 1).Equal(Rectangle(0, 0, 1, 2)))
	assert.False(t, Rectangle(0, 0, 1, 1).Equal(NoShape()))
	assert.Equal(t, "polygon", ShapePolygon.String())
}
