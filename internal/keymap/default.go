package keymap

// Default returns the compiled-in keymap, one trie per mode. It builds a
// fresh copy on every call so callers are free to merge over the result.
func Default() map[Mode]*KeyTrie {
	return map[Mode]*KeyTrie{
		ModeNormal: defaultNormal(),
		ModeInsert: defaultInsert(),
		ModeSelect: defaultSelect(),
	}
}

func defaultNormal() *KeyTrie {
	goto_ := NewNode("Goto").
		Bind("g", NewLeaf("goto_file_start")).
		Bind("e", NewLeaf("goto_last_line")).
		Bind("h", NewLeaf("goto_line_start")).
		Bind("l", NewLeaf("goto_line_end")).
		Bind("s", NewLeaf("goto_first_nonwhitespace"))

	space := NewNode("Space").
		Bind("f", NewLeaf("file_picker")).
		Bind("b", NewLeaf("buffer_picker")).
		Bind("/", NewLeaf("global_search"))

	return NewNode("Normal mode").
		Bind("h", NewLeaf("move_char_left")).
		Bind("j", NewLeaf("move_line_down")).
		Bind("k", NewLeaf("move_line_up")).
		Bind("l", NewLeaf("move_char_right")).
		Bind("w", NewLeaf("move_next_word_start")).
		Bind("b", NewLeaf("move_prev_word_start")).
		Bind("e", NewLeaf("move_next_word_end")).
		Bind("i", NewLeaf("insert_mode")).
		Bind("a", NewLeaf("append_mode")).
		Bind("o", NewLeaf("open_below")).
		Bind("O", NewLeaf("open_above")).
		Bind("v", NewLeaf("select_mode")).
		Bind("x", NewLeaf("extend_line_below")).
		Bind("d", NewLeaf("delete_selection")).
		Bind("c", NewLeaf("change_selection")).
		Bind("y", NewLeaf("yank")).
		Bind("p", NewLeaf("paste_after")).
		Bind("P", NewLeaf("paste_before")).
		Bind("u", NewLeaf("undo")).
		Bind("U", NewLeaf("redo")).
		Bind("/", NewLeaf("search")).
		Bind("n", NewLeaf("search_next")).
		Bind("N", NewLeaf("search_prev")).
		Bind("C-s", NewLeaf("commit_undo_checkpoint", "write_buffer")).
		Bind("g", goto_).
		Bind("space", space).
		Bind("esc", NewLeaf("normal_mode"))
}

func defaultInsert() *KeyTrie {
	return NewNode("Insert mode").
		Bind("esc", NewLeaf("normal_mode")).
		Bind("ret", NewLeaf("insert_newline")).
		Bind("tab", NewLeaf("insert_tab")).
		Bind("backspace", NewLeaf("delete_char_backward")).
		Bind("del", NewLeaf("delete_char_forward")).
		Bind("C-w", NewLeaf("delete_word_backward")).
		Bind("C-u", NewLeaf("kill_to_line_start")).
		Bind("up", NewLeaf("move_line_up")).
		Bind("down", NewLeaf("move_line_down")).
		Bind("left", NewLeaf("move_char_left")).
		Bind("right", NewLeaf("move_char_right"))
}

func defaultSelect() *KeyTrie {
	return NewNode("Select mode").
		Bind("esc", NewLeaf("exit_select_mode")).
		Bind("h", NewLeaf("extend_char_left")).
		Bind("j", NewLeaf("extend_line_down")).
		Bind("k", NewLeaf("extend_line_up")).
		Bind("l", NewLeaf("extend_char_right")).
		Bind("w", NewLeaf("extend_next_word_start")).
		Bind("b", NewLeaf("extend_prev_word_start")).
		Bind("e", NewLeaf("extend_next_word_end")).
		Bind("d", NewLeaf("delete_selection")).
		Bind("y", NewLeaf("yank")).
		Bind("v", NewLeaf("normal_mode"))
}
