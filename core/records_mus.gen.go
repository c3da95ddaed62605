// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var LabelMUS = labelMUS{}

type labelMUS struct{}

func (s labelMUS) Marshal(v Label, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s labelMUS) Unmarshal(bs []byte) (v Label, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Label(tmp)
	return
}

func (s labelMUS) Size(v Label) (size int) {
	return ord.String.Size(string(v))
}

func (s labelMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var ClaimRecordMUS = claimRecordMUS{}

type claimRecordMUS struct{}

func (s claimRecordMUS) Marshal(v ClaimRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += LabelMUS.Marshal(v.Label, bs[n:])
	n += ord.String.Marshal(v.Transcript, bs[n:])
	n += ord.String.Marshal(v.Preview, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s claimRecordMUS) Unmarshal(bs []byte) (v ClaimRecord, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Label, n1, err = LabelMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Transcript, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Preview, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s claimRecordMUS) Size(v ClaimRecord) (size int) {
	size = IDMUS.Size(v.Id)
	size += LabelMUS.Size(v.Label)
	size += ord.String.Size(v.Transcript)
	size += ord.String.Size(v.Preview)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s claimRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = LabelMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var IndexEntryMUS = indexEntryMUS{}

type indexEntryMUS struct{}

func (s indexEntryMUS) Marshal(v IndexEntry, bs []byte) (n int) {
	n = IDMUS.Marshal(v.ClaimId, bs)
	n += LabelMUS.Marshal(v.Label, bs[n:])
	return n + ord.String.Marshal(v.Preview, bs[n:])
}

func (s indexEntryMUS) Unmarshal(bs []byte) (v IndexEntry, n int, err error) {
	v.ClaimId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Label, n1, err = LabelMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Preview, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s indexEntryMUS) Size(v IndexEntry) (size int) {
	size = IDMUS.Size(v.ClaimId)
	size += LabelMUS.Size(v.Label)
	return size + ord.String.Size(v.Preview)
}

func (s indexEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = LabelMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}
