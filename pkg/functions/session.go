package functions

// SessionID returns "session::id()".
func SessionID() Function { return call("session::id") }

// SessionDB returns "session::db()".
func SessionDB() Function { return call("session::db") }

// SessionNamespace returns "session::ns()".
func SessionNamespace() Function { return call("session::ns") }

// SessionOrigin returns "session::origin()".
func SessionOrigin() Function { return call("session::origin") }

// SessionScope returns "session::sc()".
func SessionScope() Function { return call("session::sc") }
