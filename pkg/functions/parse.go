package functions

// EmailHost returns "parse::email::host(arg)".
func EmailHost(arg any) Function { return call("parse::email::host", arg) }

// EmailUser returns "parse::email::user(arg)".
func EmailUser(arg any) Function { return call("parse::email::user", arg) }

// URLDomain returns "parse::url::domain(arg)".
func URLDomain(arg any) Function { return call("parse::url::domain", arg) }

// URLFragment returns "parse::url::fragment(arg)".
func URLFragment(arg any) Function { return call("parse::url::fragment", arg) }

// URLHost returns "parse::url::host(arg)".
func URLHost(arg any) Function { return call("parse::url::host", arg) }

// URLPath returns "parse::url::path(arg)".
func URLPath(arg any) Function { return call("parse::url::path", arg) }

// URLPort returns "parse::url::port(arg)".
func URLPort(arg any) Function { return call("parse::url::port", arg) }

// URLQuery returns "parse::url::query(arg)".
func URLQuery(arg any) Function { return call("parse::url::query", arg) }
