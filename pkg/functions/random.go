package functions

// Random returns "rand()".
func Random() Function { return call("rand") }

// RandomBool returns "rand::bool()".
func RandomBool() Function { return call("rand::bool") }

// RandomUUID returns "rand::uuid()".
func RandomUUID() Function { return call("rand::uuid") }

// RandomString returns "rand::string(length)".
func RandomString(length any) Function { return call("rand::string", length) }

// RandomInt returns "rand::int(min, max)".
func RandomInt(min, max any) Function { return call("rand::int", min, max) }
