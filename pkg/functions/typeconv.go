package functions

// Bool coerces arg to "<bool>(arg)".
func Bool(arg any) Function { return call("<bool>", arg) }

// Datetime coerces arg to "<datetime>(arg)".
func Datetime(arg any) Function { return call("<datetime>", arg) }

// Duration coerces arg to "<duration>(arg)".
func Duration(arg any) Function { return call("<duration>", arg) }

// Float coerces arg to "<float>(arg)".
func Float(arg any) Function { return call("<float>", arg) }

// Int coerces arg to "<int>(arg)".
func Int(arg any) Function { return call("<int>", arg) }

// Number coerces arg to "<number>(arg)".
func Number(arg any) Function { return call("<number>", arg) }

// String coerces arg to "<string>(arg)".
func String(arg any) Function { return call("<string>", arg) }

// Regex coerces arg to "<regex>(arg)".
func Regex(arg any) Function { return call("<regex>", arg) }

// Table coerces arg to "<table>(arg)".
func Table(arg any) Function { return call("<table>", arg) }

// Point builds "<point>(lat, lon)" — a geometry point coercion.
func Point(lat, lon any) Function { return call("<point>", lat, lon) }

// Thing builds "<thing>(table, id)" — a record reference coercion.
func Thing(table, id any) Function { return call("<thing>", table, id) }
