package functions

// Now returns "time::now()".
func Now() Function { return call("time::now") }

// Add returns "time::add(dt, duration)".
func Add(dt, duration any) Function { return call("time::add", dt, duration) }

// Sub returns "time::sub(dt, duration)".
func Sub(dt, duration any) Function { return call("time::sub", dt, duration) }

// Year returns "time::year(dt)".
func Year(dt any) Function { return call("time::year", dt) }

// Month returns "time::month(dt)".
func Month(dt any) Function { return call("time::month", dt) }

// Day returns "time::day(dt)".
func Day(dt any) Function { return call("time::day", dt) }

// Hour returns "time::hour(dt)".
func Hour(dt any) Function { return call("time::hour", dt) }

// Format returns "time::format(dt, layout)".
func Format(dt, layout any) Function { return call("time::format", dt, layout) }
