package reshape

// Map replaces every entry of data with the key and value returned by
// iteratee, which is a [transform.Iteratee] or a plain
// func(key string, value any) (string, any). Entries whose key does not
// change keep their position; when two entries map to the same key the
// later one wins.
//
//	reshape.Map(data, func(k string, v any) (string, any) {
//	    return strings.ToUpper(k), v
//	})
//	// {a: 1, b: "bats"} => {A: 1, B: "bats"}
func Map(data, iteratee any) error {
	return Apply(OpMap, data, iteratee)
}

// Merge sets every entry of props on data, overwriting existing keys.
// props is a [record.Record] or a map[string]any.
//
//	// {a: 1, b: "bats"} merged with {a: 2, hello: "all"}
//	// => {a: 2, b: "bats", hello: "all"}
func Merge(data, props any) error {
	return Apply(OpMerge, data, props)
}

// Add sets the entries of props that data does not have yet.
//
//	// {a: 1, b: "bats"} added with {a: 2, hello: "all"}
//	// => {a: 1, b: "bats", hello: "all"}
func Add(data, props any) error {
	return Apply(OpAdd, data, props)
}

// Delete removes the keys named by props, a string or a list of strings.
// Absent keys are ignored.
func Delete(data, props any) error {
	return Apply(OpDelete, data, props)
}

// Rename moves values from the keys of props to the names in its values,
// in props order. A pair whose source key is absent does nothing.
//
//	// {a: 1, b: "bats", c: "color"} renamed with {b: "mammals", c: "orange"}
//	// => {a: 1, mammals: "bats", orange: "color"}
func Rename(data, props any) error {
	return Apply(OpRename, data, props)
}

// RenameReverse is Rename with every pair read from value to key, so it
// undoes a Rename with the same props.
func RenameReverse(data, props any) error {
	return Apply(OpRenameReverse, data, props)
}

// LimitTo removes every key not listed in props.
func LimitTo(data, props any) error {
	return Apply(OpLimitTo, data, props)
}

// ReplaceValueIfEquals sets each key named by props.Property whose value
// strictly equals props.IfEquals to props.ReplaceWith. props is a
// [Replacement] or a record with the keys property, ifEquals and
// replaceWith; a missing ifEquals or replaceWith key stands for
// [record.Undefined]. Keys are never created.
func ReplaceValueIfEquals(data, props any) error {
	return Apply(OpReplaceValueIfEquals, data, props)
}

// ReplaceAllValuesIfEquals is ReplaceValueIfEquals applied to every key of
// data. props.Property is ignored.
func ReplaceAllValuesIfEquals(data, props any) error {
	return Apply(OpReplaceAllValuesIfEquals, data, props)
}

// CapitalizeFirstChar upper-cases the first character of every key.
func CapitalizeFirstChar(data any) error {
	return Apply(OpCapitalizeFirstChar, data)
}

// DeCapitalizeFirstChar lower-cases the first character of every key.
func DeCapitalizeFirstChar(data any) error {
	return Apply(OpDeCapitalizeFirstChar, data)
}
