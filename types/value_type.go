// Package types defines the closed sets of tags used throughout the
// compiler: value types, script types, compile targets, and optimization
// levels, together with the bidirectional mapping between source keywords
// and tags.
//
// The numeric values of ValueType and ScriptType are externally visible:
// they match the engine's script tag encoding and must not be reordered.
package types

// ValueType identifies the type of a node, global, parameter, or script
// return value.
type ValueType uint16

const (
	Unparsed ValueType = iota
	SpecialForm
	FunctionName
	Passthrough
	Void
	Boolean
	Real
	Short
	Long
	String
	Script
	TriggerVolume
	CutsceneFlag
	CutsceneCameraPoint
	CutsceneTitle
	CutsceneRecording
	DeviceGroup
	AI
	AICommandList
	StartingProfile
	Conversation
	Navpoint
	HUDMessage
	ObjectList
	Sound
	Effect
	Damage
	LoopingSound
	AnimationGraph
	ActorVariant
	DamageEffect
	ObjectDefinition
	GameDifficulty
	Team
	AIDefaultState
	ActorType
	HUDCorner
	Object
	Unit
	Vehicle
	Weapon
	Device
	Scenery
	ObjectName
	UnitName
	VehicleName
	WeaponName
	DeviceName
	SceneryName
)

// valueTypeNames maps every tag to its display (and, where applicable,
// source keyword) spelling. Unparsed through Passthrough are display-only;
// they are never valid source keywords.
var valueTypeNames = [...]string{
	Unparsed:            "unparsed",
	SpecialForm:         "special_form",
	FunctionName:        "function_name",
	Passthrough:         "passthrough",
	Void:                "void",
	Boolean:             "boolean",
	Real:                "real",
	Short:               "short",
	Long:                "long",
	String:              "string",
	Script:              "script",
	TriggerVolume:       "trigger_volume",
	CutsceneFlag:        "cutscene_flag",
	CutsceneCameraPoint: "cutscene_camera_point",
	CutsceneTitle:       "cutscene_title",
	CutsceneRecording:   "cutscene_recording",
	DeviceGroup:         "device_group",
	AI:                  "ai",
	AICommandList:       "ai_command_list",
	StartingProfile:     "starting_profile",
	Conversation:        "conversation",
	Navpoint:            "navpoint",
	HUDMessage:          "hud_message",
	ObjectList:          "object_list",
	Sound:               "sound",
	Effect:              "effect",
	Damage:              "damage",
	LoopingSound:        "looping_sound",
	AnimationGraph:      "animation_graph",
	ActorVariant:        "actor_variant",
	DamageEffect:        "damage_effect",
	ObjectDefinition:    "object_definition",
	GameDifficulty:      "game_difficulty",
	Team:                "team",
	AIDefaultState:      "ai_default_state",
	ActorType:           "actor_type",
	HUDCorner:           "hud_corner",
	Object:              "object",
	Unit:                "unit",
	Vehicle:             "vehicle",
	Weapon:              "weapon",
	Device:              "device",
	Scenery:             "scenery",
	ObjectName:          "object_name",
	UnitName:            "unit_name",
	VehicleName:         "vehicle_name",
	WeaponName:          "weapon_name",
	DeviceName:          "device_name",
	SceneryName:         "scenery_name",
}

// valueTypeKeywords is the reverse mapping for source keywords only.
var valueTypeKeywords = func() map[string]ValueType {
	m := make(map[string]ValueType, len(valueTypeNames))
	for vt := Void; int(vt) < len(valueTypeNames); vt++ {
		m[valueTypeNames[vt]] = vt
	}
	return m
}()

// String returns the display name of the value type.
func (vt ValueType) String() string {
	if int(vt) < len(valueTypeNames) {
		return valueTypeNames[vt]
	}
	return "unparsed"
}

// ValueTypeFromString maps a source keyword to its value type tag. The
// internal tags (unparsed, special_form, function_name, passthrough) are
// not source keywords and report false.
func ValueTypeFromString(s string) (ValueType, bool) {
	vt, ok := valueTypeKeywords[s]
	return vt, ok
}
