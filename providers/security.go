package providers

// ISecurityProvider defines security provider.
type ISecurityProvider interface {
	GetUser(map[string][]string) (string, error)
}
