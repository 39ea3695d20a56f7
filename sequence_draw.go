package sapling

import "math"

var (
	heartRed      = RGB(0xdc143c)
	heartDark     = RGB(0x8b0000)
	heartRing     = RGB(0xff6b6b)
	hintColor     = RGB(0x8b7355)
	ballLight     = RGB(0xe74c3c)
	ballDark      = RGB(0x8b2500)
	earthColor    = RGB(0x654321)
	crackColor    = RGB(0x5a3d1a)
	particleColor = RGBA8(101, 67, 33, 1)
	inkColor      = RGB(0x5d4037)
	inkShadow     = RGBA8(93, 64, 55, 0.08)
	petalColor    = RGB(0xe74c3c)
)

const (
	hintSize       = 14
	hintOffset     = 90
	particleCount  = 12
	crackCount     = 5
	petalCount     = 3
	poemLineHeight = 1.8
)

// Draw renders the current phase onto c. The layout follows c.Size() so a
// resized window is picked up on the next frame.
func (s *Sequence) Draw(c Canvas) {
	s.Resize(c.Size())
	c.Clear(s.background)

	switch s.phase {
	case PhaseHeart:
		s.drawHeartPhase(c)
	case PhaseFalling:
		s.drawFalling(c)
	case PhaseImpact:
		s.drawImpact(c)
	case PhaseGrowing:
		s.drawTree(c, s.growth)
	case PhaseLeaves:
		s.drawTree(c, 1)
		s.drawBudding(c)
	case PhaseSliding:
		c.Save()
		s.camera.Apply(c)
		s.drawTree(c, 1)
		s.drawCanopy(c, false)
		c.Restore()
	case PhasePoem:
		c.Save()
		s.camera.Apply(c)
		s.drawTree(c, 1)
		s.drawCanopy(c, true)
		s.drawPetals(c)
		c.Restore()
		s.drawPoem(c)
	}
}

func (s *Sequence) drawHeartPhase(c Canvas) {
	t := s.time
	cx, cy := s.width/2, s.height/2
	rate := s.timing.HeartRate
	beat1 := math.Pow(math.Max(0, math.Sin(t*rate)), 3)
	beat2 := math.Pow(math.Max(0, math.Sin(t*rate+0.8)), 5)
	size := s.timing.HeartSize * (1 + beat1*0.08 + beat2*0.04)

	c.Save()
	c.SetAlpha(0.12)
	DrawHeart(c, cx+2, cy+4, size*1.05, heartDark, HeartStyle{})
	c.Restore()

	DrawHeart(c, cx, cy, size, heartRed, HeartStyle{Shadow: true})

	if ring := beat1 * 0.08; ring > 0 {
		c.Save()
		c.SetAlpha(ring)
		DrawHeart(c, cx, cy, size*1.3, heartRing, HeartStyle{})
		c.Restore()
	}

	if s.hint != "" {
		c.Save()
		c.SetAlpha(0.3 + math.Sin(t*2)*0.15)
		w := c.MeasureText(s.hint, hintSize)
		c.FillText(s.hint, cx-w/2, cy+hintOffset-hintSize, hintSize, hintColor)
		c.Restore()
	}
}

func (s *Sequence) drawFalling(c Canvas) {
	tm := &s.timing
	x, y := s.width/2, s.ballY
	stretch := 1.0
	if tm.BallFullSpeed > 0 {
		stretch = math.Min(s.ballVel/tm.BallFullSpeed, 1)
	}
	r := tm.BallRadius + stretch*tm.BallStretch

	var ball Path
	ball.Circle(x, y, r)
	grad := NewRadialGradient(
		x-r*0.3, y-r*0.3, r*0.1,
		x, y, r,
		ColorStop{0, ballLight},
		ColorStop{1, ballDark},
	)
	c.Fill(&ball, Shade(grad))

	c.Save()
	c.SetAlpha(0.15)
	var ghost Path
	ghost.Circle(x, y-s.ballVel*tm.BallGhostDelay, r*0.8)
	c.Fill(&ghost, Solid(ballLight))
	c.Restore()
}

func (s *Sequence) drawImpact(c Canvas) {
	tm := &s.timing
	x, ground := s.width/2, s.groundY()
	t := s.phaseTime

	if t < tm.ParticleDuration {
		life := 1 - t/tm.ParticleDuration
		travel := t * 150 // px per second of particle flight
		for i := 0; i < particleCount; i++ {
			fi := float64(i)
			angle := fi/particleCount*math.Pi + math.Sin(fi*2.3)*0.3
			d := travel * (0.5 + math.Sin(fi*1.7)*0.5)
			size := (3 + math.Sin(fi)*2) * life
			if size <= 0 {
				continue
			}
			var p Path
			p.Circle(x+math.Cos(angle)*d, ground-math.Sin(angle)*d*0.6, size)
			c.Fill(&p, Solid(particleColor.WithAlpha(life)))
		}
	}

	sink := 1.0
	if tm.SinkDuration > 0 {
		sink = math.Min(t/tm.SinkDuration, 1)
	}
	if r := 20 * (1 - sink); r > 0.5 {
		var p Path
		p.Circle(x, ground, r)
		c.Fill(&p, Solid(earthColor))
	}

	c.Save()
	fade := 0.4
	if tm.CrackFade > 0 {
		fade = math.Min(t/tm.CrackFade, 0.4)
	}
	c.SetAlpha(fade)
	var cracks Path
	for i := 0; i < crackCount; i++ {
		a := float64(i)/crackCount*math.Pi - math.Pi*0.1
		l := 15 + float64(i)*8
		cracks.MoveTo(x, ground)
		cracks.LineTo(x+math.Cos(a)*l, ground+math.Sin(a)*l*0.3+2)
	}
	c.Stroke(&cracks, Solid(crackColor), StrokeStyle{Width: 1.5})
	c.Restore()
}

// drawTree renders the tree at the center of the world layer and keeps the
// tips for leaf placement.
func (s *Sequence) drawTree(c Canvas, progress float64) {
	s.tips = s.tree.Render(c, s.seed, s.width/2, s.groundY(), progress, s.treeHeight())
}

func (s *Sequence) leafPosition(leaf Leaf) Vec2 {
	return PlaceLeaf(leaf, s.tips, s.width/2, s.groundY(), s.treeHeight())
}

// drawBudding draws the leaves revealed so far, each scaling in with a
// small hop.
func (s *Sequence) drawBudding(c Canvas) {
	total := len(s.leaves)
	if total == 0 {
		return
	}
	visible := int(math.Floor(s.leafProgress * float64(total)))
	if visible > total {
		visible = total
	}
	for i := 0; i < visible; i++ {
		leaf := s.leaves[i]
		appear := math.Min((s.leafProgress-float64(i)/float64(total))*s.timing.LeafAppear, 1)
		if appear <= 0 {
			continue
		}
		bounce := 0.0
		if appear < 1 {
			bounce = math.Sin(appear*math.Pi) * 0.3
		}
		pos := s.leafPosition(leaf)
		DrawHeart(c, pos.X, pos.Y-bounce*10, leaf.Size*appear, leaf.Color, HeartStyle{Rotation: leaf.Angle})
	}
}

// drawCanopy draws every leaf, swaying gently when sway is set.
func (s *Sequence) drawCanopy(c Canvas, sway bool) {
	t := s.time
	for i, leaf := range s.leaves {
		pos := s.leafPosition(leaf)
		angle := leaf.Angle
		if sway {
			fi := float64(i)
			pos.X += math.Sin(t*1.5+fi*0.4) * 2.5
			pos.Y += math.Sin(t*1.2 + fi*0.7)
			angle += math.Sin(t+fi*0.5) * 0.08
		}
		DrawHeart(c, pos.X, pos.Y, leaf.Size, leaf.Color, HeartStyle{Rotation: angle})
	}
}

// drawPetals drops a few small hearts from the crown on an eight second
// loop.
func (s *Sequence) drawPetals(c Canvas) {
	t := s.time
	tx, ground, maxH := s.width/2, s.groundY(), s.treeHeight()
	for i := 0; i < petalCount; i++ {
		fi := float64(i)
		ft := math.Mod(t*0.3+fi*3.7, 8)
		if ft >= 6 {
			continue
		}
		alpha := 0.5
		if ft >= 5 {
			alpha = 0.5 * (6 - ft)
		}
		c.Save()
		c.SetAlpha(alpha)
		DrawHeart(c,
			tx+math.Sin(ft*2+fi*5)*maxH*0.3,
			ground-maxH*0.7+ft*maxH*0.13,
			5, petalColor,
			HeartStyle{Rotation: math.Sin(ft*3+fi) * 0.5},
		)
		c.Restore()
	}
}

// drawPoem renders the typewriter text in screen space with its cursor, or
// the closing heart once the text is complete.
func (s *Sequence) drawPoem(c Canvas) {
	t := s.time
	x := s.width * 0.05
	top := s.height * 0.15
	size := math.Min(20, math.Max(14, s.width*0.018))
	lineH := size * poemLineHeight

	lines := s.poem.Lines()
	for i, line := range lines {
		y := top + float64(i)*lineH
		c.FillText(line, x+1, y+1, size, inkShadow)
		c.FillText(line, x, y, size, inkColor)
	}

	if !s.poem.Done() {
		if int(math.Floor(t*s.timing.CursorBlink))%2 == 0 {
			last := len(lines) - 1
			lw := c.MeasureText(lines[last], size)
			cx := x + lw + 3
			cy := top + float64(last)*lineH + 2
			cursor := Polygon(
				Vec2{cx, cy}, Vec2{cx + 2, cy},
				Vec2{cx + 2, cy + size*1.1}, Vec2{cx, cy + size*1.1},
			)
			c.Fill(cursor, Solid(inkColor))
		}
		return
	}

	endY := top + float64(len(lines))*lineH + 20
	pulse := 1 + math.Sin(t*2.5)*0.1
	DrawHeart(c, x+12, endY+5, 12*pulse, heartRed, HeartStyle{Shadow: true})
}
