package serializer_test

import (
	"relview/server/association"
	"relview/server/data"
	"relview/server/object/description"
	"relview/server/object/meta"
)

//countingLoader counts the fetches reaching the wrapped loader.
type countingLoader struct {
	data.Loader
	fetches int
}

func (loader *countingLoader) Get(m *meta.Meta, key string, val interface{}) (map[string]interface{}, error) {
	loader.fetches++
	return loader.Loader.Get(m, key, val)
}

func (loader *countingLoader) GetAll(m *meta.Meta, key string, val interface{}) ([]map[string]interface{}, error) {
	loader.fetches++
	return loader.Loader.GetAll(m, key, val)
}

type video struct {
	Id       int    `json:"id"`
	Url      string `json:"url"`
	Duration int    `json:"duration"`
	internal string
}

func (v *video) TypeName() string {
	return "ClipVideo"
}

//clipReflection relates a post to a video kept outside of the loader.
type clipReflection struct {
	clip    *video
	options map[string]interface{}
}

func (r *clipReflection) Name() string {
	return "clip"
}

func (r *clipReflection) Options() map[string]interface{} {
	return r.options
}

func (r *clipReflection) ForeignKeyOn() association.ForeignKeyOn {
	return association.ForeignKeyOnRelated
}

func (r *clipReflection) Collection() bool {
	return false
}

func (r *clipReflection) IncludeData(includeSlice map[string]interface{}) bool {
	return true
}

func (r *clipReflection) Value(parent interface{}, includeSlice map[string]interface{}) (interface{}, error) {
	return r.clip, nil
}

func blogDescriptions() []*description.MetaDescription {
	return []*description.MetaDescription{
		{
			Name:   "post",
			Key:    "id",
			Fields: []string{"id", "title"},
			Relations: []description.RelationDescription{
				{Name: "author", Type: description.RelationTypeObject, LinkMeta: "person"},
				{Name: "comments", Type: description.RelationTypeArray, LinkMeta: "comment"},
				{Name: "attachment", Type: description.RelationTypeGeneric, LinkMetaList: []string{"photo"}},
			},
		},
		{Name: "person", Key: "id", Fields: []string{"id", "name"}},
		{
			Name:   "comment",
			Key:    "id",
			Fields: []string{"id", "body", "post_id"},
			Relations: []description.RelationDescription{
				{Name: "author", Type: description.RelationTypeObject, LinkMeta: "person"},
			},
		},
		{Name: "photo", Key: "id", Fields: []string{"id", "url"}},
	}
}

func fillBlog(metaCache *meta.MetaCache, loader *data.MemoryLoader) {
	loader.Put(metaCache.Get("person"),
		map[string]interface{}{"id": 1, "name": "Ann"},
		map[string]interface{}{"id": 2, "name": "Bob"},
	)
	loader.Put(metaCache.Get("comment"),
		map[string]interface{}{"id": 10, "body": "first", "post_id": 5, "author": 2},
		map[string]interface{}{"id": 11, "body": "elsewhere", "post_id": 6, "author": 1},
		map[string]interface{}{"id": 12, "body": "second", "post_id": 5, "author": 1},
	)
	loader.Put(metaCache.Get("photo"), map[string]interface{}{"id": 7, "url": "http://example.com/7.png"})
	loader.Put(metaCache.Get("post"), map[string]interface{}{
		"id":         5,
		"title":      "Hello",
		"author":     1,
		"attachment": map[string]interface{}{"_object": "photo", "id": 7},
	})
}
