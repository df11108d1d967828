package vtparser

// Synthetic key codes, offset so they never collide with the ASCII range
// (0-127) plain keys and Ctrl-letters use (§6).
const (
	KeyPageUp   int32 = 1001
	KeyPageDown int32 = 1002
	KeyHome     int32 = 1003
	KeyEnd      int32 = 1004
	KeyDelete   int32 = 1005
	KeyInsert   int32 = 1006

	KeyF1 int32 = 1011
	KeyF2 int32 = 1012
	KeyF3 int32 = 1013
	KeyF4 int32 = 1014

	KeyUp    int32 = 1065
	KeyDown  int32 = 1066
	KeyRight int32 = 1067
	KeyLeft  int32 = 1068
)

// ASCII control codes the parser treats specially (§4.3, §6).
const (
	KeyTab       int32 = 9
	KeyEnter     int32 = 13
	KeyEsc       int32 = 27
	KeyBackspace int32 = 127
)
