package record_test

import (
	"relview/server/association"
	"relview/server/data/record"
	"relview/server/object/description"
	"relview/server/object/meta"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Record", func() {
	person := &meta.Meta{MetaDescription: &description.MetaDescription{Name: "person", Key: "id", Fields: []string{"id", "name"}}}

	It("formats its key", func() {
		Expect(record.NewRecord(person, map[string]interface{}{"id": float64(12)}).PkAsString()).To(Equal("12"))
		Expect(record.NewRecord(person, map[string]interface{}{"id": 1.5}).PkAsString()).To(Equal("1.5"))
		Expect(record.NewRecord(person, map[string]interface{}{"id": "a-1"}).PkAsString()).To(Equal("a-1"))
		Expect(record.NewRecord(person, nil).PkAsString()).To(Equal(""))
	})

	It("is typed by its object", func() {
		r := record.NewRecord(person, map[string]interface{}{"id": 1, "name": "Ann"})

		Expect(r.TypeName()).To(Equal("person"))
		name, ok := r.Get("name")
		Expect(ok).To(BeTrue())
		Expect(name).To(Equal("Ann"))
		_, ok = r.Get("email")
		Expect(ok).To(BeFalse())
	})

	It("collects records of one object", func() {
		set := record.NewRecordSet(person)
		set.Append(map[string]interface{}{"id": 1})
		set.Append(map[string]interface{}{"id": 2})

		Expect(set.Len()).To(Equal(2))
		Expect(set.TypeName()).To(Equal("person" + association.CollectionSuffix))
		Expect(set.Records[1].Data).To(Equal(map[string]interface{}{"id": 2}))
		Expect(set.Records[1].Meta).To(Equal(person))
	})
})
