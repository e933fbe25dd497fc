// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slice0LjuSTEmXxrl2kbcaS7IzQΞΞ = ord.NewSliceSer[float32](varint.Float32)
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

var OptionalMUS = optionalMUS{}

type optionalMUS struct{}

func (s optionalMUS) Marshal(v Optional, bs []byte) (n int) {
	n = varint.Float64.Marshal(v.Val, bs)
	return n + ord.Bool.Marshal(v.Defined, bs[n:])
}

func (s optionalMUS) Unmarshal(bs []byte) (v Optional, n int, err error) {
	v.Val, n, err = varint.Float64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Defined, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	return
}

func (s optionalMUS) Size(v Optional) (size int) {
	size = varint.Float64.Size(v.Val)
	return size + ord.Bool.Size(v.Defined)
}

func (s optionalMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Float64.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	return
}

var UserPreferenceMUS = userPreferenceMUS{}

type userPreferenceMUS struct{}

func (s userPreferenceMUS) Marshal(v UserPreference, bs []byte) (n int) {
	n = ord.String.Marshal(v.Id, bs)
	n += OptionalMUS.Marshal(v.Budget, bs[n:])
	n += OptionalMUS.Marshal(v.Bedrooms, bs[n:])
	n += OptionalMUS.Marshal(v.Bathrooms, bs[n:])
	n += OptionalMUS.Marshal(v.LivingArea, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s userPreferenceMUS) Unmarshal(bs []byte) (v UserPreference, n int, err error) {
	v.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Budget, n1, err = OptionalMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Bedrooms, n1, err = OptionalMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Bathrooms, n1, err = OptionalMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LivingArea, n1, err = OptionalMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
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

func (s userPreferenceMUS) Size(v UserPreference) (size int) {
	size = ord.String.Size(v.Id)
	size += OptionalMUS.Size(v.Budget)
	size += OptionalMUS.Size(v.Bedrooms)
	size += OptionalMUS.Size(v.Bathrooms)
	size += OptionalMUS.Size(v.LivingArea)
	size += ord.String.Size(v.Description)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s userPreferenceMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = OptionalMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = OptionalMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = OptionalMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = OptionalMUS.Skip(bs[n:])
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

var PropertyListingMUS = propertyListingMUS{}

type propertyListingMUS struct{}

func (s propertyListingMUS) Marshal(v PropertyListing, bs []byte) (n int) {
	n = ord.String.Marshal(v.Id, bs)
	n += OptionalMUS.Marshal(v.Price, bs[n:])
	n += OptionalMUS.Marshal(v.Bedrooms, bs[n:])
	n += OptionalMUS.Marshal(v.Bathrooms, bs[n:])
	n += OptionalMUS.Marshal(v.LivingArea, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s propertyListingMUS) Unmarshal(bs []byte) (v PropertyListing, n int, err error) {
	v.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Price, n1, err = OptionalMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Bedrooms, n1, err = OptionalMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Bathrooms, n1, err = OptionalMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LivingArea, n1, err = OptionalMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
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

func (s propertyListingMUS) Size(v PropertyListing) (size int) {
	size = ord.String.Size(v.Id)
	size += OptionalMUS.Size(v.Price)
	size += OptionalMUS.Size(v.Bedrooms)
	size += OptionalMUS.Size(v.Bathrooms)
	size += OptionalMUS.Size(v.LivingArea)
	size += ord.String.Size(v.Description)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s propertyListingMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = OptionalMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = OptionalMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = OptionalMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = OptionalMUS.Skip(bs[n:])
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

var EmbeddingMUS = embeddingMUS{}

type embeddingMUS struct{}

func (s embeddingMUS) Marshal(v Embedding, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += slice0LjuSTEmXxrl2kbcaS7IzQΞΞ.Marshal(v.Vector, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
}

func (s embeddingMUS) Unmarshal(bs []byte) (v Embedding, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Vector, n1, err = slice0LjuSTEmXxrl2kbcaS7IzQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s embeddingMUS) Size(v Embedding) (size int) {
	size = IDMUS.Size(v.Id)
	size += slice0LjuSTEmXxrl2kbcaS7IzQΞΞ.Size(v.Vector)
	return size + raw.TimeUnixMicro.Size(v.InsertedAt)
}

func (s embeddingMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = slice0LjuSTEmXxrl2kbcaS7IzQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
