package entity

import (
	"snake-game/game/types"
)

// Snake holds the head and the trailing segments. Body is ordered oldest
// first: Body[0] is the tail tip, the last element sits right behind the
// head.
type Snake struct {
	head types.Point
	body []types.Point
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		head: startPos,
		body: []types.Point{startPos},
	}
}

// Move shifts the head by direction and slides the body one step after it.
// The move is applied even when it ends in self-collision; the return
// value is false in that case.
func (s *Snake) Move(direction types.Point) bool {
	oldHead := s.head
	s.head = s.head.Add(direction)

	if len(s.body) == 0 {
		return true
	}

	s.removeTail()
	s.body = append(s.body, oldHead)

	return !s.IsSelfColliding()
}

func (s *Snake) removeTail() {
	if len(s.body) > 0 {
		s.body = s.body[1:]
	}
}

// IsSelfColliding reports whether the head overlaps any body segment.
func (s *Snake) IsSelfColliding() bool {
	for _, p := range s.body {
		if p == s.head {
			return true
		}
	}
	return false
}

// GrowAtHead appends the current head position to the body.
func (s *Snake) GrowAtHead() {
	s.body = append(s.body, s.head)
}

func (s *Snake) Head() types.Point {
	return s.head
}

// Body returns a copy of the segments, oldest first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

// Len is the number of body segments, not counting the head.
func (s *Snake) Len() int {
	return len(s.body)
}
