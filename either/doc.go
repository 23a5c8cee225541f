// Package either provides the marker used inside struct templates expanded by
// either-gen.
//
// A template is a struct type declared in a file excluded from normal builds
// (by default with the "eithertemplate" build tag). Fields whose candidate type
// is not fixed use the Choice marker and list their candidates in the struct
// tag:
//
//	//go:build eithertemplate
//
//	package scores
//
//	import "either-generator/either"
//
//	// Score is a score entry.
//	//
//	//either:template ScoreWithPlayer: [Player: PlayerData], ScoreWithoutPlayer: [PlayerName: string]
//	type Score[T any] struct {
//		PlayerName either.Choice `either:"struct{} | string"`
//		Player     either.Choice `either:"int32 | PlayerData"`
//		Value      T
//	}
//
// The first candidate of each field is its default. Running either-gen writes
// scores_either.go with a generic Score plus one alias per derivation, or, with
// the GenStructs setting, one independent struct per derivation.
package either
