// Package remote implements a websocket keypad bridge for the PIN widget.
//
// A phone or second terminal can act as the widget's keyboard: it connects to
// the bridge's /keys endpoint and sends one JSON frame per key event. The
// bridge decodes each frame into pinentry.KeyEvent values and hands them to a
// Sink, which is expected to forward them onto the UI goroutine (for the
// terminal host that is tea.Program.Send). The bridge never touches the widget
// itself.
//
// # Frames
//
//	{"type":"key","code":"5","action":"down"}
//	{"type":"key","code":"enter"}                        // down + up
//	{"type":"delete_surrounding","before":1,"after":0}   // soft-keyboard backspace
//	{"type":"commit","text":"5"}                         // accepted and ignored
//
// Every frame is answered with {"ok":true} or {"ok":false,"error":"..."}.
//
// # Endpoints
//
//   - GET /keys: websocket upgrade
//   - GET /healthz: liveness probe, returns 200
package remote
