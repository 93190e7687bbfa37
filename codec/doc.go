// Package codec decodes the base64 payload of compiled definitions and
// shapes the optional import object handed to instantiation.
package codec
