package shaders

import (
	"strings"
	"testing"
)

func TestSourcesEmbedded(t *testing.T) {
	sources := map[string]string{
		"globe.vert":   GlobeVertexShader,
		"globe.frag":   GlobeFragmentShader,
		"overlay.vert": OverlayVertexShader,
		"overlay.frag": OverlayFragmentShader,
	}
	for name, src := range sources {
		if !strings.HasPrefix(src, "#version 410 core") {
			t.Errorf("%s: missing #version 410 core header", name)
		}
		if !strings.Contains(src, "void main()") {
			t.Errorf("%s: no main function", name)
		}
	}
}

func TestGlobeUniforms(t *testing.T) {
	for _, u := range []string{"uModelView", "uProjection", "uLightDir", "uAmbient", "uBaseColor"} {
		if !strings.Contains(GlobeVertexShader, u) {
			t.Errorf("globe vertex shader lacks %s", u)
		}
	}
	if !strings.Contains(GlobeFragmentShader, "uTexture") {
		t.Error("globe fragment shader lacks uTexture")
	}
}
