package encryptobj

// EncodingMode represents how the IV and ciphertext are combined into the
// single value stored on the inner entity.
type EncodingMode uint8

const (
	// EncodingTextSafe base64-encodes the IV and ciphertext so the stored
	// value is safe for text-oriented storage. This is the default.
	EncodingTextSafe EncodingMode = iota
	// EncodingRaw concatenates the IV and ciphertext as untransformed bytes.
	EncodingRaw
)

// String returns the string representation of the encoding mode
func (m EncodingMode) String() string {
	switch m {
	case EncodingTextSafe:
		return "text-safe"
	case EncodingRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// valid reports whether m is a recognized encoding mode
func (m EncodingMode) valid() bool {
	return m == EncodingTextSafe || m == EncodingRaw
}

// Config contains configuration for an EncryptedProxy
type Config struct {
	// EncryptedFields lists the field names to encrypt. Fields not listed
	// here pass through to the inner entity unchanged.
	EncryptedFields []string

	// Encoding selects the stored-value encoding. Unrecognized values are
	// normalized to EncodingTextSafe rather than rejected, preserving the
	// permissive behavior of existing deployments.
	Encoding EncodingMode

	// AllowWeakIV permits writes even when the random source reports a
	// draw that is not cryptographically strong.
	AllowWeakIV bool

	// Provider supplies cipher operations. Defaults to the package
	// provider when nil.
	Provider Provider

	// Random supplies IV bytes. Defaults to a crypto/rand backed source
	// when nil.
	Random RandomSource
}

// Entity is the collaborator wrapped by an EncryptedProxy. It exposes
// named-field access, existence and removal checks, and method invocation
// by name with positional arguments.
type Entity interface {
	// GetField returns the value stored under name and whether it exists
	GetField(name string) ([]byte, bool)

	// SetField stores value under name, replacing any existing value
	SetField(name string, value []byte)

	// HasField reports whether a value is stored under name
	HasField(name string) bool

	// RemoveField deletes the value stored under name and reports whether
	// one existed
	RemoveField(name string) bool

	// Invoke calls the named method with the given arguments
	Invoke(method string, args ...any) (any, error)
}
