package leveldata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpriteCollider(t *testing.T) {
	tests := []struct {
		sprite int
		want   Collider
	}{
		{0, None},
		{3, Full},
		{9, Climbable},
		{10, Star},
		{11, ExtraLife},
		{12, Exit},
		{14, Deadly},
		{16, Collectible(1)},
		{25, Slippery},
		{55, Climbable},
		{59, Conveyor},
		{61, Exit},
		{200, None},
		{-1, None},
		{SpriteCount, None},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SpriteCollider(tt.sprite), "sprite %d", tt.sprite)
	}
}

func TestBlockingColliders(t *testing.T) {
	assert.True(t, Full.Blocking())
	assert.True(t, Slippery.Blocking())
	assert.True(t, Conveyor.Blocking())
	assert.False(t, Climbable.Blocking())
	assert.False(t, Deadly.Blocking())
	assert.False(t, Collectible(5).Blocking())
}

func TestLevelCollider(t *testing.T) {
	data := &LevelData{Tiles: []int{0, 4, 11}}
	assert.Equal(t, None, data.Collider(0))
	assert.Equal(t, Full, data.Collider(1))
	assert.Equal(t, Star, data.Collider(2))
	assert.Equal(t, None, data.Collider(3))
}
