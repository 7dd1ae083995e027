package main

import (
	"github.com/automoto/cosmoball/messages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputBinding represents the keys and buttons that send one toggle input
type InputBinding struct {
	Kind                   messages.InputKind
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var bindings = []InputBinding{
	{
		Kind: messages.InputPauseToggle,
		Keys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape},
		// Start button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	{
		Kind: messages.InputDebugToggle,
		Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyF3},
	},
	{
		Kind: messages.InputMuteToggle,
		Keys: []ebiten.Key{ebiten.KeyM},
	},
	{
		Kind: messages.InputRestart,
		Keys: []ebiten.Key{ebiten.KeyR},
		// Select / Back button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
}

var gamepadIDs []ebiten.GamepadID

// toggleInputs returns an input for every binding pressed this frame.
func toggleInputs() []messages.Input {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var inputs []messages.Input
	for _, b := range bindings {
		if justPressed(b) {
			inputs = append(inputs, messages.Input{Kind: b.Kind})
		}
	}
	return inputs
}

func justPressed(b InputBinding) bool {
	for _, key := range b.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, button := range b.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, button) {
				return true
			}
		}
	}
	return false
}
