package scenes

// SceneChanger swaps the active scene
type SceneChanger interface {
	ChangeScene(scene interface{})
}
