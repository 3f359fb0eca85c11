// Code generated by hand. DO NOT EDIT.

package a

//harmony:patch Player Missing
type Generated struct{}

func (Generated) Prefix() string { return "" }
