package record

import (
	"relview/server/association"
	"relview/server/object/meta"
)

//RecordSet is the collection of records an array relation resolves to.
type RecordSet struct {
	Meta    *meta.Meta
	Records []*Record
}

func NewRecordSet(meta *meta.Meta) *RecordSet {
	return &RecordSet{Meta: meta, Records: make([]*Record, 0)}
}

func (recordSet *RecordSet) Append(data map[string]interface{}) *Record {
	record := NewRecord(recordSet.Meta, data)
	recordSet.Records = append(recordSet.Records, record)
	return record
}

func (recordSet *RecordSet) Len() int {
	return len(recordSet.Records)
}

func (recordSet *RecordSet) TypeName() string {
	return recordSet.Meta.TypeName() + association.CollectionSuffix
}
