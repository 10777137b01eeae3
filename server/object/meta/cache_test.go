package meta_test

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"relview/server/object/description"
	"relview/server/object/meta"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Meta cache", func() {
	var metaCache *meta.MetaCache

	descriptions := func() []*description.MetaDescription {
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
			{Name: "comment", Key: "id", Fields: []string{"id", "body", "post_id"}},
			{Name: "photo", Key: "id", Fields: []string{"id", "url"}},
		}
	}

	BeforeEach(func() {
		metaCache = meta.NewCache()
	})

	It("resolves relations declared before their targets", func() {
		err := metaCache.Fill(descriptions())
		Expect(err).To(BeNil())

		post := metaCache.Get("post")
		Expect(post).NotTo(BeNil())
		Expect(post.Relations).To(HaveLen(3))

		author := post.FindRelation("author")
		Expect(author.LinkMeta).To(Equal(metaCache.Get("person")))
		Expect(author.IsBelongsTo()).To(BeTrue())
		Expect(author.Collection()).To(BeFalse())
		Expect(author.Owner).To(Equal(post))

		comments := post.FindRelation("comments")
		Expect(comments.Collection()).To(BeTrue())
		Expect(comments.IsBelongsTo()).To(BeFalse())
		Expect(comments.OuterLinkField).To(Equal("post_id"))

		attachment := post.FindRelation("attachment")
		Expect(attachment.Generic()).To(BeTrue())
		Expect(attachment.LinkMetaList.Names()).To(Equal([]string{"photo"}))
	})

	It("keeps the declaration order", func() {
		Expect(metaCache.Fill(descriptions())).To(Succeed())

		names := make([]string, 0)
		for _, m := range metaCache.GetList() {
			names = append(names, m.Name)
		}
		Expect(names).To(Equal([]string{"post", "person", "comment", "photo"}))
	})

	It("caches copies of the given descriptions", func() {
		person := &description.MetaDescription{Name: "person", Key: "id", Fields: []string{"id", "name"}}
		Expect(metaCache.Fill([]*description.MetaDescription{person})).To(Succeed())
		person.Fields = []string{"id"}

		Expect(metaCache.Get("person").Fields).To(Equal([]string{"id", "name"}))
		Expect(metaCache.Get("person").MetaDescription).NotTo(BeIdenticalTo(person))
	})

	It("factories a copy of the given description", func() {
		book := &description.MetaDescription{Name: "book", Key: "id", Fields: []string{"id", "title"}}
		m, err := metaCache.FactoryMeta(book)
		Expect(err).To(BeNil())
		book.Fields[1] = "isbn"

		Expect(m.Fields).To(Equal([]string{"id", "title"}))
	})

	It("fails on a relation to an unknown object", func() {
		mdl := descriptions()
		mdl[0].Relations[0].LinkMeta = "editor"
		err := metaCache.Fill(mdl)

		Expect(err).NotTo(BeNil())
		Expect(err.Error()).To(ContainSubstring("'editor'"))
	})

	It("fails on an outer relation without its link field", func() {
		mdl := descriptions()
		mdl[2].Fields = []string{"id", "body"}
		err := metaCache.Fill(mdl)

		Expect(err).NotTo(BeNil())
		Expect(err.Error()).To(ContainSubstring("post_id"))
	})

	It("hands out the live options bag of a relation", func() {
		Expect(metaCache.Fill(descriptions())).To(Succeed())
		author := metaCache.Get("post").FindRelation("author")
		author.Options()["meta"] = map[string]interface{}{"total": 1}

		Expect(metaCache.Get("post").MetaDescription.Relations[0].Options["meta"]).To(Equal(map[string]interface{}{"total": 1}))
	})

	It("factories a single meta against cached ones", func() {
		Expect(metaCache.Fill(descriptions()[1:2])).To(Succeed())
		m, err := metaCache.FactoryMeta(&description.MetaDescription{
			Name:      "book",
			Key:       "id",
			Fields:    []string{"id"},
			Relations: []description.RelationDescription{{Name: "author", Type: description.RelationTypeObject, LinkMeta: "person"}},
		})

		Expect(err).To(BeNil())
		Expect(m.FindRelation("author").LinkMeta.Name).To(Equal("person"))

		_, err = metaCache.FactoryMeta(&description.MetaDescription{
			Name:      "shelf",
			Key:       "id",
			Fields:    []string{"id"},
			Relations: []description.RelationDescription{{Name: "books", Type: description.RelationTypeArray, LinkMeta: "nothing"}},
		})
		Expect(err).NotTo(BeNil())
		Expect(metaCache.Get("shelf")).To(BeNil())
	})

	It("loads descriptions from a JSON file", func() {
		dir, err := ioutil.TempDir("", "meta")
		Expect(err).To(BeNil())
		defer os.RemoveAll(dir)
		path := filepath.Join(dir, "meta.json")
		content := `[{"name":"person","key":"id","fields":["id","name"],"relations":[{"name":"friends","type":"array","linkMeta":"person","outerLinkField":"name"}]}]`
		Expect(ioutil.WriteFile(path, []byte(content), 0644)).To(Succeed())

		Expect(metaCache.LoadFile(path)).To(Succeed())
		Expect(metaCache.Get("person").FindRelation("friends").LinkMeta.Name).To(Equal("person"))
	})

	It("flushes", func() {
		Expect(metaCache.Fill(descriptions())).To(Succeed())
		metaCache.Flush()

		Expect(metaCache.GetList()).To(BeEmpty())
		Expect(metaCache.Get("post")).To(BeNil())
	})
})
