// Package greeting serves the static greeting at GET /.
package greeting
