package functions

// MD5 returns "crypto::md5(arg)".
func MD5(arg any) Function { return call("crypto::md5", arg) }

// SHA256 returns "crypto::sha256(arg)".
func SHA256(arg any) Function { return call("crypto::sha256", arg) }

// SHA512 returns "crypto::sha512(arg)".
func SHA512(arg any) Function { return call("crypto::sha512", arg) }

// ArgonCompare returns "crypto::argon2::compare(hash, plaintext)".
func ArgonCompare(hash, plaintext any) Function {
	return call("crypto::argon2::compare", hash, plaintext)
}

// ArgonGenerate returns "crypto::argon2::generate(plaintext)".
func ArgonGenerate(plaintext any) Function { return call("crypto::argon2::generate", plaintext) }
