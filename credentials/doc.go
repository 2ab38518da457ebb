// Package credentials resolves and persists API credentials.
//
// The API key is looked up in order: an explicit value passed by the caller,
// the WORDCAB_API_KEY environment variable, and finally the token stored by
// a previous login at ~/.wordcab/token.
package credentials
