package scene

import (
	"render-engine/core"
	"render-engine/math"
)

// Scene owns the node tree plus the flat Objects/Materials slices that
// nodes weakly reference by index (§9 "Cyclic graphs"), grounded on the
// teacher's scene.Scene container shape (Root/Camera/Lights/Ambient).
type Scene struct {
	Root      *Node
	Camera    *Camera
	Lights    []*Light
	Objects   []Object
	Materials []*Material
	Ambient   core.Color
	Background core.Color
}

func NewScene() *Scene {
	return &Scene{
		Root: NewNode("root"),
	}
}

func (s *Scene) AddObject(o Object) int {
	s.Objects = append(s.Objects, o)
	return len(s.Objects) - 1
}

func (s *Scene) AddMaterial(m *Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

func (s *Scene) AddLight(l *Light) {
	s.Lights = append(s.Lights, l)
}

// NumPhotonSources counts the lights eligible to emit photons, the
// denominator used by RandomPhoton's per-light intensity split (§4.K).
func (s *Scene) NumPhotonSources() int {
	n := 0
	for _, l := range s.Lights {
		if l.IsPhotonSource() {
			n++
		}
	}
	return n
}

// NumShadowLights counts the non-ambient lights, the denominator for the
// direct-lighting average (§9's third flagged fix: exclude ambient
// lights before dividing by |lights|).
func (s *Scene) NumShadowLights() int {
	n := 0
	for _, l := range s.Lights {
		if !l.IsAmbient() {
			n++
		}
	}
	return n
}

// MaterialAt returns the material for a hit record, or nil if the hit
// carries no material reference.
func (s *Scene) MaterialAt(mtlID int) *Material {
	if mtlID < 0 || mtlID >= len(s.Materials) {
		return nil
	}
	return s.Materials[mtlID]
}

const shadowBias = 1e-3

// shadowed casts a shadow ray from p along dir for up to maxDist and
// reports whether anything in the scene occludes it (§4.C Shadow trace).
func (s *Scene) shadowed(p, dir math.Vec3, maxDist float32) bool {
	if s.Root == nil {
		return false
	}
	origin := p.Add(dir.Mul(shadowBias))
	ray := core.NewDiffRay(core.Ray{Origin: origin, Dir: dir})
	return s.TraceShadow(s.Root, ray, core.SideBoth, maxDist)
}
