package pg_test

import (
	"database/sql"
	"fmt"

	"relview/server/data/errors"
	"relview/server/object/description"
	"relview/server/object/meta"
	"relview/server/pg"
	"relview/utils"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Select query", func() {
	person := &meta.Meta{MetaDescription: &description.MetaDescription{Name: "person", Key: "id"}}

	It("quotes the table and columns", func() {
		Expect(pg.SelectQuery(person, "group", 0)).To(Equal(
			`SELECT row_to_json(t) FROM "o_person" t WHERE t."group" = $1 ORDER BY t."id"`,
		))
		Expect(pg.SelectQuery(person, "id", 2)).To(HaveSuffix(" LIMIT 2"))
	})

	It("binds values as text", func() {
		Expect(pg.BindValue(float64(12))).To(Equal("12"))
		Expect(pg.BindValue(1.5)).To(Equal("1.5"))
		Expect(pg.BindValue(7)).To(Equal("7"))
		Expect(pg.BindValue("abc")).To(Equal("abc"))
		Expect(pg.BindValue(nil)).To(BeNil())
	})
})

var _ = Describe("Postgres loader", func() {
	appConfig := utils.GetConfig()

	var (
		db        *sql.DB
		loader    *pg.Loader
		metaCache *meta.MetaCache
	)

	BeforeEach(func() {
		if appConfig.DbConnectionUrl == "" {
			Skip("DB_CONNECTION_URL is not set")
		}
		var err error
		db, err = pg.Connect(appConfig.DbConnectionUrl, 1)
		Expect(err).To(BeNil())
		loader = pg.NewLoader(db)

		metaCache = meta.NewCache()
		Expect(metaCache.Fill([]*description.MetaDescription{
			{Name: "pg_person", Key: "id", Fields: []string{"id", "name"}},
			{Name: "pg_missing", Key: "id", Fields: []string{"id"}},
		})).To(BeNil())

		for _, statement := range []string{
			`DROP TABLE IF EXISTS o_pg_person`,
			`CREATE TABLE o_pg_person (id bigint PRIMARY KEY, name text, team text)`,
			`INSERT INTO o_pg_person VALUES (1, 'Ann', 'red'), (2, 'Bob', 'red'), (3, 'Eve', 'blue')`,
		} {
			_, err = db.Exec(statement)
			Expect(err).To(BeNil(), fmt.Sprintf("statement: %s", statement))
		}
	})

	AfterEach(func() {
		if db != nil {
			db.Exec(`DROP TABLE IF EXISTS o_pg_person`)
			db.Close()
		}
	})

	It("gets a record by a JSON decoded key", func() {
		obj, err := loader.Get(metaCache.Get("pg_person"), "id", float64(2))

		Expect(err).To(BeNil())
		Expect(obj).To(Equal(map[string]interface{}{"id": float64(2), "name": "Bob", "team": "red"}))
	})

	It("gets nothing for an unknown key", func() {
		obj, err := loader.Get(metaCache.Get("pg_person"), "id", 42)

		Expect(err).To(BeNil())
		Expect(obj).To(BeNil())
	})

	It("gets all records by a field ordered by key", func() {
		objs, err := loader.GetAll(metaCache.Get("pg_person"), "team", "red")

		Expect(err).To(BeNil())
		Expect(objs).To(HaveLen(2))
		Expect(objs[0]["name"]).To(Equal("Ann"))
		Expect(objs[1]["name"]).To(Equal("Bob"))
	})

	It("refuses to get one of many records", func() {
		_, err := loader.Get(metaCache.Get("pg_person"), "team", "red")

		Expect(err).NotTo(BeNil())
	})

	It("reports a missing table", func() {
		_, err := loader.GetAll(metaCache.Get("pg_missing"), "id", 1)

		Expect(err).NotTo(BeNil())
		Expect(err.(*errors.DataError).Code).To(Equal(errors.ErrObjectClassNotFound))
	})
})
