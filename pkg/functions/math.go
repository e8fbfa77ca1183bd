package functions

// Sum returns "math::sum(arg)" — reduces an array to its total.
func Sum(arg any) Function { return call("math::sum", arg) }

// Mean returns "math::mean(arg)".
func Mean(arg any) Function { return call("math::mean", arg) }

// Median returns "math::median(arg)".
func Median(arg any) Function { return call("math::median", arg) }

// Stddev returns "math::stddev(arg)".
func Stddev(arg any) Function { return call("math::stddev", arg) }

// Variance returns "math::variance(arg)".
func Variance(arg any) Function { return call("math::variance", arg) }

// Min returns "math::min(a, b)".
func Min(a, b any) Function { return call("math::min", a, b) }

// Max returns "math::max(a, b)".
func Max(a, b any) Function { return call("math::max", a, b) }

// Abs returns "math::abs(arg)".
func Abs(arg any) Function { return call("math::abs", arg) }

// Ceil returns "math::ceil(arg)".
func Ceil(arg any) Function { return call("math::ceil", arg) }

// Floor returns "math::floor(arg)".
func Floor(arg any) Function { return call("math::floor", arg) }

// Round returns "math::round(arg)".
func Round(arg any) Function { return call("math::round", arg) }

// Sqrt returns "math::sqrt(arg)".
func Sqrt(arg any) Function { return call("math::sqrt", arg) }
