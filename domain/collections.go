package domain

const (
	CollectionUser = "system_auth_users"
)

const (
	CollectionBookSceneBook = "book_scene_book"
)
const (
	CollectionBookSceneShelf = "book_scene_shelf"
)
const (
	CollectionBookSceneInteraction = "book_scene_interaction"
)
const (
	CollectionBookSceneSimilarity = "book_scene_similarity"
)
