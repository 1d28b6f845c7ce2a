package types

// Array, yeni bir ArrayType nesnesi oluşturur.
func Array() *ArrayType {
	return &ArrayType{}
}

// Number, yeni bir NumberType nesnesi oluşturur.
func Number() *NumberType {
	return &NumberType{}
}

// Object, yeni bir ObjectType nesnesi oluşturur.
func Object() *ObjectType {
	return &ObjectType{}
}

// String, yeni bir StringType nesnesi oluşturur.
func String() *StringType {
	return &StringType{}
}
