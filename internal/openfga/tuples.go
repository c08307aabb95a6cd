// Copyright 2026 LAMB Project
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	fga "github.com/openfga/go-sdk"
)

type Tuple struct {
	User     string
	Relation string
	Object   string
}

func NewTuple(user, relation, object string) *Tuple {
	t := new(Tuple)

	t.User = user
	t.Relation = relation
	t.Object = object

	return t
}

func (t *Tuple) ToFGATuple() fga.TupleKey {
	return *fga.NewTupleKey(t.User, t.Relation, t.Object)
}
