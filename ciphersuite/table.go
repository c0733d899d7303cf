package ciphersuite

// The master suite table, transcribed from the IANA TLS parameters
// registry:
// https://www.iana.org/assignments/tls-parameters/tls-parameters.xhtml
// plus a few historical and non-standard entries (markers, SSL2 suites,
// pre-standard ChaCha20 drafts).
//
// This is data, not code: when touching it, copy the registry values,
// don't re-derive them.
var suites = []*Suite{
	// Not a real cipher suite, see RFC 5746.
	{code: 0x00ff, kx: "NULL", cipher: "NULL", mac: "NULL",
		name: "TLS_EMPTY_RENEGOTIATION_INFO"},
	// RFC 7507.
	{code: 0x5600, name: "TLS_FALLBACK"},
	{code: 0xffff, name: "UNKNOWN_CIPHER"},

	// RFC 2246: TLS 1.0.
	{code: 0x0000, kx: "NULL", cipher: "NULL", mac: "NULL"},

	{code: 0x0001, kx: "RSA", cipher: "NULL", mac: "MD5"},
	{code: 0x0002, kx: "RSA", cipher: "NULL", mac: "SHA"},
	{code: 0x0003, kx: "RSA_EXPORT", cipher: "RC4_40", mac: "MD5"},
	{code: 0x0004, kx: "RSA", cipher: "RC4_128", mac: "MD5"},
	{code: 0x0005, kx: "RSA", cipher: "RC4_128", mac: "SHA"},
	{code: 0x0006, kx: "RSA_EXPORT", cipher: "RC2_40", mode: "CBC", mac: "MD5",
		encoding: "RC2_CBC_40"},
	{code: 0x0007, kx: "RSA", cipher: "IDEA", mode: "CBC", mac: "SHA"},
	{code: 0x0008, kx: "RSA_EXPORT", cipher: "DES40", mode: "CBC", mac: "SHA"},
	{code: 0x0009, kx: "RSA", cipher: "DES", mode: "CBC", mac: "SHA"},
	{code: 0x000a, kx: "RSA", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},

	{code: 0x000b, kx: "DH", auth: "DSS_EXPORT", cipher: "DES40", mode: "CBC", mac: "SHA"},
	{code: 0x000c, kx: "DH", auth: "DSS", cipher: "DES", mode: "CBC", mac: "SHA"},
	{code: 0x000d, kx: "DH", auth: "DSS", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},
	{code: 0x000e, kx: "DH", auth: "RSA_EXPORT", cipher: "DES40", mode: "CBC", mac: "SHA"},
	{code: 0x000f, kx: "DH", auth: "RSA", cipher: "DES", mode: "CBC", mac: "SHA"},
	{code: 0x0010, kx: "DH", auth: "RSA", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},
	{code: 0x0011, kx: "DHE", auth: "DSS_EXPORT", cipher: "DES40", mode: "CBC", mac: "SHA"},
	{code: 0x0012, kx: "DHE", auth: "DSS", cipher: "DES", mode: "CBC", mac: "SHA"},
	{code: 0x0013, kx: "DHE", auth: "DSS", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},
	{code: 0x0014, kx: "DHE", auth: "RSA_EXPORT", cipher: "DES40", mode: "CBC", mac: "SHA"},
	{code: 0x0015, kx: "DHE", auth: "RSA", cipher: "DES", mode: "CBC", mac: "SHA"},
	{code: 0x0016, kx: "DHE", auth: "RSA", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},

	{code: 0x0017, kx: "DH", auth: "anon_EXPORT", cipher: "RC4_40", mac: "MD5"},
	{code: 0x0018, kx: "DH", auth: "anon", cipher: "RC4_128", mac: "MD5"},
	{code: 0x0019, kx: "DH", auth: "anon_EXPORT", cipher: "DES40", mode: "CBC", mac: "SHA"},
	{code: 0x001a, kx: "DH", auth: "anon", cipher: "DES", mode: "CBC", mac: "SHA"},
	{code: 0x001b, kx: "DH", auth: "anon", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},

	// Reserved: 0x1c-0x1d.

	// RFC 2712 (via RFC 4346: TLS 1.1).
	{code: 0x001e, kx: "KRB5", cipher: "DES", mode: "CBC", mac: "SHA"},
	{code: 0x001f, kx: "KRB5", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},
	{code: 0x0020, kx: "KRB5", cipher: "RC4_128", mac: "SHA"},
	{code: 0x0021, kx: "KRB5", cipher: "IDEA", mode: "CBC", mac: "SHA"},
	{code: 0x0022, kx: "KRB5", cipher: "DES", mode: "CBC", mac: "MD5"},
	{code: 0x0023, kx: "KRB5", cipher: "3DES_EDE", mode: "CBC", mac: "MD5"},
	{code: 0x0024, kx: "KRB5", cipher: "RC4_128", mac: "MD5"},
	{code: 0x0025, kx: "KRB5", cipher: "IDEA", mode: "CBC", mac: "MD5"},

	{code: 0x0026, kx: "KRB5_EXPORT", cipher: "DES40", mode: "CBC", mac: "SHA",
		encoding: "DES_CBC_40"},
	{code: 0x0027, kx: "KRB5_EXPORT", cipher: "RC2_40", mode: "CBC", mac: "SHA",
		encoding: "RC2_CBC_40"},
	{code: 0x0028, kx: "KRB5_EXPORT", cipher: "RC4_40", mac: "SHA"},
	{code: 0x0029, kx: "KRB5_EXPORT", cipher: "DES40", mode: "CBC", mac: "MD5",
		encoding: "DES_CBC_40"},
	{code: 0x002a, kx: "KRB5_EXPORT", cipher: "RC2_40", mode: "CBC", mac: "MD5",
		encoding: "RC2_CBC_40"},
	{code: 0x002b, kx: "KRB5_EXPORT", cipher: "RC4_40", mac: "MD5"},

	// RFC 4785.
	{code: 0x002c, auth: "PSK", cipher: "NULL", mac: "SHA"},
	{code: 0x002d, kx: "DHE", auth: "PSK", cipher: "NULL", mac: "SHA"},
	{code: 0x002e, kx: "RSA", auth: "PSK", cipher: "NULL", mac: "SHA"},

	// RFC 3268.
	{code: 0x002f, kx: "RSA", cipher: "AES_128", mode: "CBC", mac: "SHA"},
	{code: 0x0030, kx: "DH", auth: "DSS", cipher: "AES_128", mode: "CBC", mac: "SHA"},
	{code: 0x0031, kx: "DH", auth: "RSA", cipher: "AES_128", mode: "CBC", mac: "SHA"},
	{code: 0x0032, kx: "DHE", auth: "DSS", cipher: "AES_128", mode: "CBC", mac: "SHA"},
	{code: 0x0033, kx: "DHE", auth: "RSA", cipher: "AES_128", mode: "CBC", mac: "SHA"},
	{code: 0x0034, kx: "DH", auth: "anon", cipher: "AES_128", mode: "CBC", mac: "SHA"},

	{code: 0x0035, kx: "RSA", cipher: "AES_256", mode: "CBC", mac: "SHA"},
	{code: 0x0036, kx: "DH", auth: "DSS", cipher: "AES_256", mode: "CBC", mac: "SHA"},
	{code: 0x0037, kx: "DH", auth: "RSA", cipher: "AES_256", mode: "CBC", mac: "SHA"},
	{code: 0x0038, kx: "DHE", auth: "DSS", cipher: "AES_256", mode: "CBC", mac: "SHA"},
	{code: 0x0039, kx: "DHE", auth: "RSA", cipher: "AES_256", mode: "CBC", mac: "SHA"},
	{code: 0x003a, kx: "DH", auth: "anon", cipher: "AES_256", mode: "CBC", mac: "SHA"},

	// RFC 5246: TLS 1.2.
	{code: 0x003b, kx: "RSA", cipher: "NULL", mac: "SHA256"},
	{code: 0x003c, kx: "RSA", cipher: "AES_128", mode: "CBC", mac: "SHA256"},
	{code: 0x003d, kx: "RSA", cipher: "AES_256", mode: "CBC", mac: "SHA256"},
	{code: 0x003e, kx: "DH", auth: "DSS", cipher: "AES_128", mode: "CBC", mac: "SHA256"},
	{code: 0x003f, kx: "DH", auth: "RSA", cipher: "AES_128", mode: "CBC", mac: "SHA256"},
	{code: 0x0040, kx: "DHE", auth: "DSS", cipher: "AES_128", mode: "CBC", mac: "SHA256"},

	// RFC 5932.
	{code: 0x0041, kx: "RSA", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA"},
	{code: 0x0042, kx: "DH", auth: "DSS", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA"},
	{code: 0x0043, kx: "DH", auth: "RSA", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA"},
	{code: 0x0044, kx: "DHE", auth: "DSS", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA"},
	{code: 0x0045, kx: "DHE", auth: "RSA", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA"},
	{code: 0x0046, kx: "DH", auth: "anon", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA"},

	// Reserved: 0x47-0x5c.  Unassigned: 0x5d-0x5f.  Reserved: 0x60-0x66.

	// RFC 5246: TLS 1.2.
	{code: 0x0067, kx: "DHE", auth: "RSA", cipher: "AES_128", mode: "CBC", mac: "SHA256"},
	{code: 0x0068, kx: "DH", auth: "DSS", cipher: "AES_256", mode: "CBC", mac: "SHA256"},
	{code: 0x0069, kx: "DH", auth: "RSA", cipher: "AES_256", mode: "CBC", mac: "SHA256"},
	{code: 0x006a, kx: "DHE", auth: "DSS", cipher: "AES_256", mode: "CBC", mac: "SHA256"},
	{code: 0x006b, kx: "DHE", auth: "RSA", cipher: "AES_256", mode: "CBC", mac: "SHA256"},
	{code: 0x006c, kx: "DH", auth: "anon", cipher: "AES_128", mode: "CBC", mac: "SHA256"},
	{code: 0x006d, kx: "DH", auth: "anon", cipher: "AES_256", mode: "CBC", mac: "SHA256"},

	// Unassigned: 0x6e-0x83.

	// RFC 5932.
	{code: 0x0084, kx: "RSA", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA"},
	{code: 0x0085, kx: "DH", auth: "DSS", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA"},
	{code: 0x0086, kx: "DH", auth: "RSA", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA"},
	{code: 0x0087, kx: "DHE", auth: "DSS", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA"},
	{code: 0x0088, kx: "DHE", auth: "RSA", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA"},
	{code: 0x0089, kx: "DH", auth: "anon", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA"},

	// RFC 4279.
	{code: 0x008a, auth: "PSK", cipher: "RC4_128", mac: "SHA"},
	{code: 0x008b, auth: "PSK", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},
	{code: 0x008c, auth: "PSK", cipher: "AES_128", mode: "CBC", mac: "SHA"},
	{code: 0x008d, auth: "PSK", cipher: "AES_256", mode: "CBC", mac: "SHA"},
	{code: 0x008e, kx: "DHE", auth: "PSK", cipher: "RC4_128", mac: "SHA"},
	{code: 0x008f, kx: "DHE", auth: "PSK", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},
	{code: 0x0090, kx: "DHE", auth: "PSK", cipher: "AES_128", mode: "CBC", mac: "SHA"},
	{code: 0x0091, kx: "DHE", auth: "PSK", cipher: "AES_256", mode: "CBC", mac: "SHA"},
	{code: 0x0092, kx: "RSA", auth: "PSK", cipher: "RC4_128", mac: "SHA"},
	{code: 0x0093, kx: "RSA", auth: "PSK", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},
	{code: 0x0094, kx: "RSA", auth: "PSK", cipher: "AES_128", mode: "CBC", mac: "SHA"},
	{code: 0x0095, kx: "RSA", auth: "PSK", cipher: "AES_256", mode: "CBC", mac: "SHA"},

	// RFC 4162.
	{code: 0x0096, kx: "RSA", cipher: "SEED", mode: "CBC", mac: "SHA"},
	{code: 0x0097, kx: "DH", auth: "DSS", cipher: "SEED", mode: "CBC", mac: "SHA"},
	{code: 0x0098, kx: "DH", auth: "RSA", cipher: "SEED", mode: "CBC", mac: "SHA"},
	{code: 0x0099, kx: "DHE", auth: "DSS", cipher: "SEED", mode: "CBC", mac: "SHA"},
	{code: 0x009a, kx: "DHE", auth: "RSA", cipher: "SEED", mode: "CBC", mac: "SHA"},
	{code: 0x009b, kx: "DH", auth: "anon", cipher: "SEED", mode: "CBC", mac: "SHA"},

	// RFC 5288.
	{code: 0x009c, kx: "RSA", cipher: "AES_128", mode: "GCM", mac: "SHA256"},
	{code: 0x009d, kx: "RSA", cipher: "AES_256", mode: "GCM", mac: "SHA384"},
	{code: 0x009e, kx: "DHE", auth: "RSA", cipher: "AES_128", mode: "GCM", mac: "SHA256"},
	{code: 0x009f, kx: "DHE", auth: "RSA", cipher: "AES_256", mode: "GCM", mac: "SHA384"},
	{code: 0x00a0, kx: "DH", auth: "RSA", cipher: "AES_128", mode: "GCM", mac: "SHA256"},
	{code: 0x00a1, kx: "DH", auth: "RSA", cipher: "AES_256", mode: "GCM", mac: "SHA384"},
	{code: 0x00a2, kx: "DHE", auth: "DSS", cipher: "AES_128", mode: "GCM", mac: "SHA256"},
	{code: 0x00a3, kx: "DHE", auth: "DSS", cipher: "AES_256", mode: "GCM", mac: "SHA384"},
	{code: 0x00a4, kx: "DH", auth: "DSS", cipher: "AES_128", mode: "GCM", mac: "SHA256"},
	{code: 0x00a5, kx: "DH", auth: "DSS", cipher: "AES_256", mode: "GCM", mac: "SHA384"},
	{code: 0x00a6, kx: "DH", auth: "anon", cipher: "AES_128", mode: "GCM", mac: "SHA256"},
	{code: 0x00a7, kx: "DH", auth: "anon", cipher: "AES_256", mode: "GCM", mac: "SHA384"},

	// RFC 5487.
	{code: 0x00a8, auth: "PSK", cipher: "AES_128", mode: "GCM", mac: "SHA256"},
	{code: 0x00a9, auth: "PSK", cipher: "AES_256", mode: "GCM", mac: "SHA384"},
	{code: 0x00aa, kx: "DHE", auth: "PSK", cipher: "AES_128", mode: "GCM", mac: "SHA256"},
	{code: 0x00ab, kx: "DHE", auth: "PSK", cipher: "AES_256", mode: "GCM", mac: "SHA384"},
	{code: 0x00ac, kx: "RSA", auth: "PSK", cipher: "AES_128", mode: "GCM", mac: "SHA256"},
	{code: 0x00ad, kx: "RSA", auth: "PSK", cipher: "AES_256", mode: "GCM", mac: "SHA384"},

	{code: 0x00ae, auth: "PSK", cipher: "AES_128", mode: "CBC", mac: "SHA256"},
	{code: 0x00af, auth: "PSK", cipher: "AES_256", mode: "CBC", mac: "SHA384"},
	{code: 0x00b0, auth: "PSK", cipher: "NULL", mac: "SHA256"},
	{code: 0x00b1, auth: "PSK", cipher: "NULL", mac: "SHA384"},

	{code: 0x00b2, kx: "DHE", auth: "PSK", cipher: "AES_128", mode: "CBC", mac: "SHA256"},
	{code: 0x00b3, kx: "DHE", auth: "PSK", cipher: "AES_256", mode: "CBC", mac: "SHA384"},
	{code: 0x00b4, kx: "DHE", auth: "PSK", cipher: "NULL", mac: "SHA256"},
	{code: 0x00b5, kx: "DHE", auth: "PSK", cipher: "NULL", mac: "SHA384"},

	{code: 0x00b6, kx: "RSA", auth: "PSK", cipher: "AES_128", mode: "CBC", mac: "SHA256"},
	{code: 0x00b7, kx: "RSA", auth: "PSK", cipher: "AES_256", mode: "CBC", mac: "SHA384"},
	{code: 0x00b8, kx: "RSA", auth: "PSK", cipher: "NULL", mac: "SHA256"},
	{code: 0x00b9, kx: "RSA", auth: "PSK", cipher: "NULL", mac: "SHA384"},

	// RFC 5932.
	{code: 0x00ba, kx: "RSA", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0x00bb, kx: "DH", auth: "DSS", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0x00bc, kx: "DH", auth: "RSA", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0x00bd, kx: "DHE", auth: "DSS", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0x00be, kx: "DHE", auth: "RSA", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0x00bf, kx: "DH", auth: "anon", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA256"},

	{code: 0x00c0, kx: "RSA", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA256"},
	{code: 0x00c1, kx: "DH", auth: "DSS", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA256"},
	{code: 0x00c2, kx: "DH", auth: "RSA", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA256"},
	{code: 0x00c3, kx: "DHE", auth: "DSS", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA256"},
	{code: 0x00c4, kx: "DHE", auth: "RSA", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA256"},
	{code: 0x00c5, kx: "DH", auth: "anon", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA256"},

	// RFC 4492.
	{code: 0xc001, kx: "ECDH", auth: "ECDSA", cipher: "NULL", mac: "SHA"},
	{code: 0xc002, kx: "ECDH", auth: "ECDSA", cipher: "RC4_128", mac: "SHA"},
	{code: 0xc003, kx: "ECDH", auth: "ECDSA", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},
	{code: 0xc004, kx: "ECDH", auth: "ECDSA", cipher: "AES_128", mode: "CBC", mac: "SHA"},
	{code: 0xc005, kx: "ECDH", auth: "ECDSA", cipher: "AES_256", mode: "CBC", mac: "SHA"},

	{code: 0xc006, kx: "ECDHE", auth: "ECDSA", cipher: "NULL", mac: "SHA"},
	{code: 0xc007, kx: "ECDHE", auth: "ECDSA", cipher: "RC4_128", mac: "SHA"},
	{code: 0xc008, kx: "ECDHE", auth: "ECDSA", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},
	{code: 0xc009, kx: "ECDHE", auth: "ECDSA", cipher: "AES_128", mode: "CBC", mac: "SHA"},
	{code: 0xc00a, kx: "ECDHE", auth: "ECDSA", cipher: "AES_256", mode: "CBC", mac: "SHA"},

	{code: 0xc00b, kx: "ECDH", auth: "RSA", cipher: "NULL", mac: "SHA"},
	{code: 0xc00c, kx: "ECDH", auth: "RSA", cipher: "RC4_128", mac: "SHA"},
	{code: 0xc00d, kx: "ECDH", auth: "RSA", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},
	{code: 0xc00e, kx: "ECDH", auth: "RSA", cipher: "AES_128", mode: "CBC", mac: "SHA"},
	{code: 0xc00f, kx: "ECDH", auth: "RSA", cipher: "AES_256", mode: "CBC", mac: "SHA"},

	{code: 0xc010, kx: "ECDHE", auth: "RSA", cipher: "NULL", mac: "SHA"},
	{code: 0xc011, kx: "ECDHE", auth: "RSA", cipher: "RC4_128", mac: "SHA"},
	{code: 0xc012, kx: "ECDHE", auth: "RSA", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},
	{code: 0xc013, kx: "ECDHE", auth: "RSA", cipher: "AES_128", mode: "CBC", mac: "SHA"},
	{code: 0xc014, kx: "ECDHE", auth: "RSA", cipher: "AES_256", mode: "CBC", mac: "SHA"},

	{code: 0xc015, kx: "ECDH", auth: "anon", cipher: "NULL", mac: "SHA"},
	{code: 0xc016, kx: "ECDH", auth: "anon", cipher: "RC4_128", mac: "SHA"},
	{code: 0xc017, kx: "ECDH", auth: "anon", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},
	{code: 0xc018, kx: "ECDH", auth: "anon", cipher: "AES_128", mode: "CBC", mac: "SHA"},
	{code: 0xc019, kx: "ECDH", auth: "anon", cipher: "AES_256", mode: "CBC", mac: "SHA"},

	// RFC 5054.
	{code: 0xc01a, kx: "SRP_SHA", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},
	{code: 0xc01b, kx: "SRP_SHA", auth: "RSA", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},
	{code: 0xc01c, kx: "SRP_SHA", auth: "DSS", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},
	{code: 0xc01d, kx: "SRP_SHA", cipher: "AES_128", mode: "CBC", mac: "SHA"},
	{code: 0xc01e, kx: "SRP_SHA", auth: "RSA", cipher: "AES_128", mode: "CBC", mac: "SHA"},
	{code: 0xc01f, kx: "SRP_SHA", auth: "DSS", cipher: "AES_128", mode: "CBC", mac: "SHA"},
	{code: 0xc020, kx: "SRP_SHA", cipher: "AES_256", mode: "CBC", mac: "SHA"},
	{code: 0xc021, kx: "SRP_SHA", auth: "RSA", cipher: "AES_256", mode: "CBC", mac: "SHA"},
	{code: 0xc022, kx: "SRP_SHA", auth: "DSS", cipher: "AES_256", mode: "CBC", mac: "SHA"},

	// RFC 5289.
	{code: 0xc023, kx: "ECDHE", auth: "ECDSA", cipher: "AES_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc024, kx: "ECDHE", auth: "ECDSA", cipher: "AES_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc025, kx: "ECDH", auth: "ECDSA", cipher: "AES_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc026, kx: "ECDH", auth: "ECDSA", cipher: "AES_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc027, kx: "ECDHE", auth: "RSA", cipher: "AES_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc028, kx: "ECDHE", auth: "RSA", cipher: "AES_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc029, kx: "ECDH", auth: "RSA", cipher: "AES_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc02a, kx: "ECDH", auth: "RSA", cipher: "AES_256", mode: "CBC", mac: "SHA384"},

	{code: 0xc02b, kx: "ECDHE", auth: "ECDSA", cipher: "AES_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc02c, kx: "ECDHE", auth: "ECDSA", cipher: "AES_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc02d, kx: "ECDH", auth: "ECDSA", cipher: "AES_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc02e, kx: "ECDH", auth: "ECDSA", cipher: "AES_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc02f, kx: "ECDHE", auth: "RSA", cipher: "AES_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc030, kx: "ECDHE", auth: "RSA", cipher: "AES_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc031, kx: "ECDH", auth: "RSA", cipher: "AES_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc032, kx: "ECDH", auth: "RSA", cipher: "AES_256", mode: "GCM", mac: "SHA384"},

	// RFC 5489.
	{code: 0xc033, kx: "ECDHE", auth: "PSK", cipher: "RC4_128", mac: "SHA"},
	{code: 0xc034, kx: "ECDHE", auth: "PSK", cipher: "3DES_EDE", mode: "CBC", mac: "SHA"},
	{code: 0xc035, kx: "ECDHE", auth: "PSK", cipher: "AES_128", mode: "CBC", mac: "SHA"},
	{code: 0xc036, kx: "ECDHE", auth: "PSK", cipher: "AES_256", mode: "CBC", mac: "SHA"},
	{code: 0xc037, kx: "ECDHE", auth: "PSK", cipher: "AES_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc038, kx: "ECDHE", auth: "PSK", cipher: "AES_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc039, kx: "ECDHE", auth: "PSK", cipher: "NULL", mac: "SHA"},
	{code: 0xc03a, kx: "ECDHE", auth: "PSK", cipher: "NULL", mac: "SHA256"},
	{code: 0xc03b, kx: "ECDHE", auth: "PSK", cipher: "NULL", mac: "SHA384"},

	// RFC 6209.
	{code: 0xc03c, kx: "RSA", cipher: "ARIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc03d, kx: "RSA", cipher: "ARIA_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc03e, kx: "DH", auth: "DSS", cipher: "ARIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc03f, kx: "DH", auth: "DSS", cipher: "ARIA_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc040, kx: "DH", auth: "RSA", cipher: "ARIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc041, kx: "DH", auth: "RSA", cipher: "ARIA_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc042, kx: "DHE", auth: "DSS", cipher: "ARIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc043, kx: "DHE", auth: "DSS", cipher: "ARIA_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc044, kx: "DHE", auth: "RSA", cipher: "ARIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc045, kx: "DHE", auth: "RSA", cipher: "ARIA_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc046, kx: "DH", auth: "anon", cipher: "ARIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc047, kx: "DH", auth: "anon", cipher: "ARIA_256", mode: "CBC", mac: "SHA384"},

	{code: 0xc048, kx: "ECDHE", auth: "ECDSA", cipher: "ARIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc049, kx: "ECDHE", auth: "ECDSA", cipher: "ARIA_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc04a, kx: "ECDH", auth: "ECDSA", cipher: "ARIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc04b, kx: "ECDH", auth: "ECDSA", cipher: "ARIA_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc04c, kx: "ECDHE", auth: "RSA", cipher: "ARIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc04d, kx: "ECDHE", auth: "RSA", cipher: "ARIA_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc04e, kx: "ECDH", auth: "RSA", cipher: "ARIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc04f, kx: "ECDH", auth: "RSA", cipher: "ARIA_256", mode: "CBC", mac: "SHA384"},

	{code: 0xc050, kx: "RSA", cipher: "ARIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc051, kx: "RSA", cipher: "ARIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc052, kx: "DHE", auth: "RSA", cipher: "ARIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc053, kx: "DHE", auth: "RSA", cipher: "ARIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc054, kx: "DH", auth: "RSA", cipher: "ARIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc055, kx: "DH", auth: "RSA", cipher: "ARIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc056, kx: "DHE", auth: "DSS", cipher: "ARIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc057, kx: "DHE", auth: "DSS", cipher: "ARIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc058, kx: "DH", auth: "DSS", cipher: "ARIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc059, kx: "DH", auth: "DSS", cipher: "ARIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc05a, kx: "DH", auth: "anon", cipher: "ARIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc05b, kx: "DH", auth: "anon", cipher: "ARIA_256", mode: "GCM", mac: "SHA384"},

	{code: 0xc05c, kx: "ECDHE", auth: "ECDSA", cipher: "ARIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc05d, kx: "ECDHE", auth: "ECDSA", cipher: "ARIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc05e, kx: "ECDH", auth: "ECDSA", cipher: "ARIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc05f, kx: "ECDH", auth: "ECDSA", cipher: "ARIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc060, kx: "ECDHE", auth: "RSA", cipher: "ARIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc061, kx: "ECDHE", auth: "RSA", cipher: "ARIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc062, kx: "ECDH", auth: "RSA", cipher: "ARIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc063, kx: "ECDH", auth: "RSA", cipher: "ARIA_256", mode: "GCM", mac: "SHA384"},

	{code: 0xc064, auth: "PSK", cipher: "ARIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc065, auth: "PSK", cipher: "ARIA_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc066, kx: "DHE", auth: "PSK", cipher: "ARIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc067, kx: "DHE", auth: "PSK", cipher: "ARIA_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc068, kx: "RSA", auth: "PSK", cipher: "ARIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc069, kx: "RSA", auth: "PSK", cipher: "ARIA_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc06a, auth: "PSK", cipher: "ARIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc06b, auth: "PSK", cipher: "ARIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc06c, kx: "DHE", auth: "PSK", cipher: "ARIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc06d, kx: "DHE", auth: "PSK", cipher: "ARIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc06e, kx: "RSA", auth: "PSK", cipher: "ARIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc06f, kx: "RSA", auth: "PSK", cipher: "ARIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc070, kx: "ECDHE", auth: "PSK", cipher: "ARIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc071, kx: "ECDHE", auth: "PSK", cipher: "ARIA_256", mode: "GCM", mac: "SHA384"},

	// RFC 6367.
	{code: 0xc072, kx: "ECDHE", auth: "ECDSA", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc073, kx: "ECDHE", auth: "ECDSA", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc074, kx: "ECDH", auth: "ECDSA", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc075, kx: "ECDH", auth: "ECDSA", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc076, kx: "ECDHE", auth: "RSA", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc077, kx: "ECDHE", auth: "RSA", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc078, kx: "ECDH", auth: "RSA", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc079, kx: "ECDH", auth: "RSA", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA384"},

	{code: 0xc07a, kx: "RSA", cipher: "CAMELLIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc07b, kx: "RSA", cipher: "CAMELLIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc07c, kx: "DHE", auth: "RSA", cipher: "CAMELLIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc07d, kx: "DHE", auth: "RSA", cipher: "CAMELLIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc07e, kx: "DH", auth: "RSA", cipher: "CAMELLIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc07f, kx: "DH", auth: "RSA", cipher: "CAMELLIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc080, kx: "DHE", auth: "DSS", cipher: "CAMELLIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc081, kx: "DHE", auth: "DSS", cipher: "CAMELLIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc082, kx: "DH", auth: "DSS", cipher: "CAMELLIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc083, kx: "DH", auth: "DSS", cipher: "CAMELLIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc084, kx: "DH", auth: "anon", cipher: "CAMELLIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc085, kx: "DH", auth: "anon", cipher: "CAMELLIA_256", mode: "GCM", mac: "SHA384"},

	{code: 0xc086, kx: "ECDHE", auth: "ECDSA", cipher: "CAMELLIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc087, kx: "ECDHE", auth: "ECDSA", cipher: "CAMELLIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc088, kx: "ECDH", auth: "ECDSA", cipher: "CAMELLIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc089, kx: "ECDH", auth: "ECDSA", cipher: "CAMELLIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc08a, kx: "ECDHE", auth: "RSA", cipher: "CAMELLIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc08b, kx: "ECDHE", auth: "RSA", cipher: "CAMELLIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc08c, kx: "ECDH", auth: "RSA", cipher: "CAMELLIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc08d, kx: "ECDH", auth: "RSA", cipher: "CAMELLIA_256", mode: "GCM", mac: "SHA384"},

	{code: 0xc08e, auth: "PSK", cipher: "CAMELLIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc08f, auth: "PSK", cipher: "CAMELLIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc090, kx: "DHE", auth: "PSK", cipher: "CAMELLIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc091, kx: "DHE", auth: "PSK", cipher: "CAMELLIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc092, kx: "RSA", auth: "PSK", cipher: "CAMELLIA_128", mode: "GCM", mac: "SHA256"},
	{code: 0xc093, kx: "RSA", auth: "PSK", cipher: "CAMELLIA_256", mode: "GCM", mac: "SHA384"},
	{code: 0xc094, auth: "PSK", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc095, auth: "PSK", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc096, kx: "DHE", auth: "PSK", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc097, kx: "DHE", auth: "PSK", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc098, kx: "RSA", auth: "PSK", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc099, kx: "RSA", auth: "PSK", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA384"},
	{code: 0xc09a, kx: "ECDHE", auth: "PSK", cipher: "CAMELLIA_128", mode: "CBC", mac: "SHA256"},
	{code: 0xc09b, kx: "ECDHE", auth: "PSK", cipher: "CAMELLIA_256", mode: "CBC", mac: "SHA384"},

	// RFC 6655. CCM suites have no separate MAC.
	{code: 0xc09c, kx: "RSA", cipher: "AES_128", mode: "CCM"},
	{code: 0xc09d, kx: "RSA", cipher: "AES_256", mode: "CCM"},
	{code: 0xc09e, kx: "DHE", auth: "RSA", cipher: "AES_128", mode: "CCM"},
	{code: 0xc09f, kx: "DHE", auth: "RSA", cipher: "AES_256", mode: "CCM"},
	{code: 0xc0a0, kx: "RSA", cipher: "AES_128", mode: "CCM_8"},
	{code: 0xc0a1, kx: "RSA", cipher: "AES_256", mode: "CCM_8"},
	{code: 0xc0a2, kx: "DHE", auth: "RSA", cipher: "AES_128", mode: "CCM_8"},
	{code: 0xc0a3, kx: "DHE", auth: "RSA", cipher: "AES_256", mode: "CCM_8"},

	{code: 0xc0a4, auth: "PSK", cipher: "AES_128", mode: "CCM"},
	{code: 0xc0a5, auth: "PSK", cipher: "AES_256", mode: "CCM"},
	{code: 0xc0a6, kx: "DHE", auth: "PSK", cipher: "AES_128", mode: "CCM"},
	{code: 0xc0a7, kx: "DHE", auth: "PSK", cipher: "AES_256", mode: "CCM"},
	{code: 0xc0a8, auth: "PSK", cipher: "AES_128", mode: "CCM_8"},
	{code: 0xc0a9, auth: "PSK", cipher: "AES_256", mode: "CCM_8"},
	{code: 0xc0aa, kx: "DHE", auth: "PSK", cipher: "AES_128", mode: "CCM_8"},
	{code: 0xc0ab, kx: "DHE", auth: "PSK", cipher: "AES_256", mode: "CCM_8"},

	// RFC 7251.
	{code: 0xc0ac, kx: "ECDHE", auth: "ECDSA", cipher: "AES_128", mode: "CCM"},
	{code: 0xc0ad, kx: "ECDHE", auth: "ECDSA", cipher: "AES_256", mode: "CCM"},
	{code: 0xc0ae, kx: "ECDHE", auth: "ECDSA", cipher: "AES_128", mode: "CCM_8"},
	{code: 0xc0af, kx: "ECDHE", auth: "ECDSA", cipher: "AES_256", mode: "CCM_8"},

	// Unassigned: 0xc0b0-0xcca7, except for the pre-standard ChaCha20
	// draft suites, which differ from the RFC 7905 ones only in name.
	{code: 0xcc13, kx: "ECDHE", auth: "RSA", cipher: "CHACHA20", mode: "POLY1305", mac: "SHA256",
		name: "OLD_TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256"},
	{code: 0xcc14, kx: "ECDHE", auth: "ECDSA", cipher: "CHACHA20", mode: "POLY1305", mac: "SHA256",
		name: "OLD_TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256"},
	{code: 0xcc15, kx: "DHE", auth: "RSA", cipher: "CHACHA20", mode: "POLY1305", mac: "SHA256",
		name: "OLD_TLS_DHE_RSA_WITH_CHACHA20_POLY1305_SHA256"},

	// RFC 7905.
	{code: 0xcca8, kx: "ECDHE", auth: "RSA", cipher: "CHACHA20", mode: "POLY1305", mac: "SHA256"},
	{code: 0xcca9, kx: "ECDHE", auth: "ECDSA", cipher: "CHACHA20", mode: "POLY1305", mac: "SHA256"},
	{code: 0xccaa, kx: "DHE", auth: "RSA", cipher: "CHACHA20", mode: "POLY1305", mac: "SHA256"},

	{code: 0xccab, auth: "PSK", cipher: "CHACHA20", mode: "POLY1305", mac: "SHA256"},
	{code: 0xccac, kx: "ECDHE", auth: "PSK", cipher: "CHACHA20", mode: "POLY1305", mac: "SHA256"},
	{code: 0xccad, kx: "DHE", auth: "PSK", cipher: "CHACHA20", mode: "POLY1305", mac: "SHA256"},
	{code: 0xccae, kx: "RSA", auth: "PSK", cipher: "CHACHA20", mode: "POLY1305", mac: "SHA256"},

	// Unassigned: 0xccaf-0xfefd.  Reserved: 0xfefe-0xffff.

	// Legacy SSL2 "CK" suites, three-byte codes.
	{code: 0x010080, kx: "RSA", auth: "RSA", cipher: "RC4_128", mac: "MD5",
		name: "SSL_CK_RC4_128_WITH_MD5"},
	{code: 0x020080, kx: "RSA", auth: "RSA", cipher: "RC4_128_EXPORT40", mac: "MD5",
		name: "SSL_CK_RC4_128_EXPORT40_WITH_MD5"},
	{code: 0x030080, kx: "RSA", auth: "RSA", cipher: "RC2_128", mode: "CBC", mac: "MD5",
		name: "SSL_CK_RC2_128_CBC_WITH_MD5", encoding: "RC2_CBC_128"},
	{code: 0x040080, kx: "RSA", auth: "RSA", cipher: "RC2_128_EXPORT40", mode: "CBC", mac: "MD5",
		name: "SSL_CK_RC2_128_CBC_EXPORT40_WITH_MD5", encoding: "RC2_CBC_128_EXPORT40"},
	{code: 0x050080, kx: "RSA", auth: "RSA", cipher: "IDEA_128", mode: "CBC", mac: "MD5",
		name: "SSL_CK_IDEA_128_CBC_WITH_MD5", encoding: "IDEA_CBC_128"},
	{code: 0x060040, kx: "RSA", auth: "RSA", cipher: "DES", mode: "CBC", mac: "MD5",
		name: "SSL_CK_DES_64_CBC_WITH_MD5", encoding: "DES_CBC_64"},
	{code: 0x0700c0, kx: "RSA", auth: "RSA", cipher: "3DES", mode: "CBC", mac: "MD5",
		name: "SSL_CK_DES_192_EDE3_CBC_WITH_MD5", encoding: "DES_EDE3_CBC_192"},
}
