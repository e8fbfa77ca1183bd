package functions

// Uppercase returns "string::uppercase(arg)".
func Uppercase(arg any) Function { return call("string::uppercase", arg) }

// Lowercase returns "string::lowercase(arg)".
func Lowercase(arg any) Function { return call("string::lowercase", arg) }

// Trim returns "string::trim(arg)".
func Trim(arg any) Function { return call("string::trim", arg) }

// Split returns "string::split(arg, sep)".
func Split(arg, sep any) Function { return call("string::split", arg, sep) }

// Join returns "string::join(sep, parts...)".
func Join(sep any, parts ...any) Function {
	return call("string::join", append([]any{sep}, parts...)...)
}

// Replace returns "string::replace(arg, pattern, replacement)".
func Replace(arg, pattern, replacement any) Function {
	return call("string::replace", arg, pattern, replacement)
}

// Concat returns "string::concat(parts...)".
func Concat(parts ...any) Function { return call("string::concat", parts...) }

// StartsWith returns "string::startsWith(arg, prefix)".
func StartsWith(arg, prefix any) Function { return call("string::startsWith", arg, prefix) }

// EndsWith returns "string::endsWith(arg, suffix)".
func EndsWith(arg, suffix any) Function { return call("string::endsWith", arg, suffix) }

// Slice returns "string::slice(arg, start, length)".
func Slice(arg, start, length any) Function { return call("string::slice", arg, start, length) }

// Len returns "string::len(arg)".
func Len(arg any) Function { return call("string::len", arg) }

// Reverse returns "string::reverse(arg)".
func Reverse(arg any) Function { return call("string::reverse", arg) }
