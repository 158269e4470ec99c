package sink

import (
	"encoding/json"

	"github.com/serenakung/speech-scene-generator/pkg/scene"
	"github.com/serenakung/speech-scene-generator/pkg/scene/place"
)

// jsonOutput wraps the scene with canvas geometry so consumers can re-render
// the layout without knowing the generator's constants.
type jsonOutput struct {
	CanvasWidth  int `json:"canvas_width"`
	CanvasHeight int `json:"canvas_height"`
	*scene.Result
}

// RenderJSON serializes the scene's placement data as indented JSON.
func RenderJSON(res *scene.Result) ([]byte, error) {
	return json.MarshalIndent(jsonOutput{
		CanvasWidth:  place.CanvasWidth,
		CanvasHeight: place.CanvasHeight,
		Result:       res,
	}, "", "  ")
}
