// Package cli provides the interactive Moodyssey command-line client.
//
// App holds the connection to the server and the current Session. The REPL
// started by App.Run offers register and login while logged out, and mood
// logging, history, the dashboard, trends and period comparisons once logged
// in. Passwords are read from the terminal without echo and wiped after use.
package cli
