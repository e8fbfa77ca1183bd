package functions

// Get returns "http::get(url)".
func Get(url any) Function { return call("http::get", url) }

// Post returns "http::post(url, body)".
func Post(url, body any) Function { return call("http::post", url, body) }

// Put returns "http::put(url, body)".
func Put(url, body any) Function { return call("http::put", url, body) }

// Patch returns "http::patch(url, body)".
func Patch(url, body any) Function { return call("http::patch", url, body) }

// Delete returns "http::delete(url)".
func Delete(url any) Function { return call("http::delete", url) }
