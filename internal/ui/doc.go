// Package ui provides semantic text formatting for CLI output.
//
// Formatters colour text when the terminal supports it. When NO_COLOR is set
// or colour is unavailable, text decorations are used instead:
//
//	ui.Code.Sprint("envdiff encrypt .env") // `envdiff encrypt .env`
//	ui.Key.Sprint("API_KEY")               // 'API_KEY'
//	ui.Muted.Sprint("3 keys")              // (3 keys)
//	ui.Path.Sprint(".env.enc")             // .env.enc
package ui
