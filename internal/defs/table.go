package defs

import "github.com/cwbudde/go-hsc/types"

// Construction helpers for the table below. The table is data; the helpers
// only exist to keep one entry per line.

func all(i uint16) EngineIndices {
	return EngineIndices{Xbox: i, GbxRetail: i, GbxDemo: i, GbxCustom: i, MCCCEA: i}
}

func unknown() EngineIndices {
	return all(IndexUnknown)
}

func fn(name string, ret types.ValueType, indices EngineIndices, params ...Parameter) Definition {
	return Definition{Name: name, Kind: KindFunction, ValueType: ret, Indices: indices, Parameters: params}
}

func gl(name string, vt types.ValueType, indices EngineIndices) Definition {
	return Definition{Name: name, Kind: KindGlobal, ValueType: vt, Indices: indices}
}

func p(t types.ValueType) Parameter    { return Parameter{Type: t} }
func opt(t types.ValueType) Parameter  { return Parameter{Type: t, Optional: true} }
func many(t types.ValueType) Parameter { return Parameter{Type: t, Many: true} }
func pup(t types.ValueType) Parameter  { return Parameter{Type: t, AllowUppercase: true} }

// body is the variadic passthrough tail used by the sequencing forms: any
// number of expressions where only the last one carries the caller's type.
func body() Parameter {
	return Parameter{Type: types.Passthrough, Optional: true, Many: true, PassthroughLast: true}
}

// definitions is the full builtin catalogue, sorted lexicographically by
// name (byte order). Keep it sorted: lookups binary-search it, and
// TestDefinitionsSorted enforces the invariant.
var definitions = []Definition{
	fn("!=", types.Boolean, all(14), p(types.Passthrough), p(types.Passthrough)),
	fn("*", types.Real, all(9), p(types.Real), many(types.Real)),
	fn("+", types.Real, all(7), p(types.Real), many(types.Real)),
	fn("-", types.Real, all(8), p(types.Real), p(types.Real)),
	fn("/", types.Real, all(10), p(types.Real), p(types.Real)),
	fn("<", types.Boolean, all(16), p(types.Real), p(types.Real)),
	fn("<=", types.Boolean, all(18), p(types.Real), p(types.Real)),
	fn("=", types.Boolean, all(13), p(types.Passthrough), p(types.Passthrough)),
	fn(">", types.Boolean, all(15), p(types.Real), p(types.Real)),
	fn(">=", types.Boolean, all(17), p(types.Real), p(types.Real)),
	fn("activate_team_nav_point_flag", types.Void, all(144), p(types.Team), p(types.CutsceneFlag), p(types.Real)),
	fn("activate_team_nav_point_object", types.Void, all(145), p(types.Team), p(types.Object), p(types.Real)),
	fn("ai_actors", types.ObjectList, all(184), p(types.AI)),
	fn("ai_allegiance", types.Void, all(216), p(types.Team), p(types.Team)),
	fn("ai_allegiance_remove", types.Void, all(217), p(types.Team), p(types.Team)),
	fn("ai_attach", types.Void, all(185), p(types.Unit), p(types.AI)),
	fn("ai_attack", types.Void, all(227), p(types.AI)),
	fn("ai_berserk", types.Void, all(213), p(types.AI), p(types.Boolean)),
	fn("ai_braindead", types.Void, all(198), p(types.AI), p(types.Boolean)),
	fn("ai_command_list", types.Void, all(219), p(types.AI), p(types.AICommandList)),
	fn("ai_command_list_advance", types.Void, all(220), p(types.AI)),
	fn("ai_command_list_status", types.Short, all(221), p(types.AI)),
	fn("ai_conversation", types.Boolean, all(228), p(types.Conversation)),
	fn("ai_conversation_advance", types.Boolean, all(230), p(types.Conversation)),
	fn("ai_conversation_line", types.Boolean, all(231), p(types.Conversation), p(types.Short)),
	fn("ai_conversation_stop", types.Void, all(229), p(types.Conversation)),
	fn("ai_detach", types.Void, all(186), p(types.Unit)),
	fn("ai_dialogue_triggers", types.Void, all(226), p(types.Boolean)),
	fn("ai_disposable", types.Void, all(199), p(types.AI), p(types.Boolean)),
	fn("ai_enable", types.Void, all(191), p(types.AI), p(types.Boolean)),
	fn("ai_enabled", types.Boolean, all(192), p(types.AI)),
	fn("ai_erase", types.Void, all(189), p(types.AI)),
	fn("ai_erase_all", types.Void, all(190)),
	fn("ai_exit_vehicle", types.Void, all(224), p(types.AI)),
	fn("ai_follow_target_players", types.Void, all(203), p(types.AI)),
	fn("ai_go_to_vehicle", types.Void, all(222), p(types.AI), p(types.Vehicle), p(types.String)),
	fn("ai_going_to_vehicle", types.Short, unknown(), p(types.Vehicle)),
	fn("ai_grenades", types.Void, all(200), p(types.Boolean)),
	fn("ai_kill", types.Void, all(193), p(types.AI)),
	fn("ai_kill_silent", types.Void, all(194), p(types.AI)),
	fn("ai_link_activation", types.Void, all(212), p(types.AI), p(types.Boolean)),
	fn("ai_living_count", types.Short, all(207), p(types.AI)),
	fn("ai_living_fraction", types.Real, all(208), p(types.AI)),
	fn("ai_magically_see_object", types.Void, all(210), p(types.AI), p(types.Object)),
	fn("ai_magically_see_players", types.Void, all(209), p(types.AI)),
	fn("ai_maneuver", types.Void, all(214), p(types.AI)),
	fn("ai_maneuver_enable", types.Void, all(215), p(types.Boolean)),
	fn("ai_migrate", types.Void, all(205), p(types.AI), p(types.AI)),
	fn("ai_migrate_and_speak", types.Void, all(206), p(types.AI), p(types.AI), p(types.String)),
	fn("ai_nonviolent", types.Void, all(201), p(types.AI), p(types.Boolean)),
	fn("ai_place", types.Void, all(187), p(types.AI)),
	fn("ai_play_line", types.Void, unknown(), p(types.AI), p(types.String)),
	fn("ai_prefer_target", types.Void, all(202), p(types.AI), p(types.Boolean)),
	fn("ai_renew", types.Void, all(195), p(types.AI)),
	fn("ai_set_blind", types.Void, all(196), p(types.AI), p(types.Boolean)),
	fn("ai_set_deaf", types.Void, all(197), p(types.AI), p(types.Boolean)),
	fn("ai_set_respawn", types.Void, all(204), p(types.AI), p(types.Boolean)),
	fn("ai_spawn_actor", types.Void, all(188), p(types.AI)),
	fn("ai_status", types.Short, all(211), p(types.AI)),
	fn("ai_strength", types.Real, unknown(), p(types.AI)),
	fn("ai_teleport_to_starting_location", types.Void, all(218), p(types.AI)),
	fn("ai_vitality_pinned", types.Boolean, all(225), p(types.AI)),
	fn("and", types.Boolean, all(5), p(types.Boolean), many(types.Boolean)),
	fn("begin", types.Passthrough, all(0), body()),
	fn("begin_random", types.Passthrough, all(1), body()),
	gl("breakable_surfaces", types.Boolean, all(4)),
	fn("breakable_surfaces_enable", types.Void, all(43), p(types.Boolean)),
	fn("camera_control", types.Boolean, all(148), p(types.Boolean)),
	fn("camera_set", types.Void, all(149), p(types.CutsceneCameraPoint), p(types.Short)),
	fn("camera_set_first_person", types.Void, all(151), p(types.Unit)),
	fn("camera_time", types.Long, all(153)),
	fn("cheat_all_powerups", types.Void, all(158)),
	fn("cheat_all_vehicles", types.Void, all(159)),
	fn("cheat_all_weapons", types.Void, all(157)),
	gl("cheat_deathless_player", types.Boolean, all(33)),
	fn("cheat_spawn_warthog", types.Void, all(160)),
	fn("cheat_teleport_to_camera", types.Void, all(161)),
	fn("cinematic_screen_effect_set_convolution", types.Void, all(89), p(types.Short), p(types.Real), p(types.Real), p(types.Real)),
	fn("cinematic_screen_effect_set_video", types.Void, all(91), p(types.Short), p(types.Real)),
	fn("cinematic_screen_effect_start", types.Void, all(88), p(types.Boolean)),
	fn("cinematic_screen_effect_stop", types.Void, all(90)),
	fn("cinematic_set_title", types.Void, all(94), p(types.CutsceneTitle)),
	fn("cinematic_show_letterbox", types.Void, all(85), p(types.Boolean)),
	fn("cinematic_skip_start_internal", types.Void, all(95)),
	fn("cinematic_skip_stop_internal", types.Void, all(96)),
	fn("cinematic_start", types.Void, all(83)),
	fn("cinematic_stop", types.Void, all(84)),
	fn("crash", types.Void, unknown(), pup(types.String)),
	fn("custom_animation", types.Void, all(117), p(types.Unit), p(types.AnimationGraph), pup(types.String), p(types.Boolean)),
	fn("damage_new", types.Void, all(80), p(types.Damage), p(types.CutsceneFlag)),
	fn("damage_object", types.Void, all(81), p(types.Damage), p(types.Object)),
	fn("deactivate_team_nav_point_flag", types.Void, all(146), p(types.Team), p(types.CutsceneFlag)),
	fn("deactivate_team_nav_point_object", types.Void, all(147), p(types.Team), p(types.Object)),
	gl("debug_objects", types.Boolean, unknown()),
	gl("debug_sounds", types.Boolean, all(10)),
	fn("device_animate_overlay", types.Void, all(134), p(types.Device), p(types.Real), p(types.Real), p(types.Real), p(types.Real)),
	fn("device_animate_position", types.Void, all(133), p(types.Device), p(types.Real), p(types.Real), p(types.Real), p(types.Real)),
	fn("device_closes_automatically_set", types.Void, all(128), p(types.Device), p(types.Boolean)),
	fn("device_get_position", types.Real, all(131), p(types.Device)),
	fn("device_get_power", types.Real, all(125), p(types.Device)),
	fn("device_group_change_only_once_more_set", types.Void, all(124), p(types.DeviceGroup), p(types.Boolean)),
	fn("device_group_get", types.Real, all(121), p(types.DeviceGroup)),
	fn("device_group_set", types.Void, all(122), p(types.DeviceGroup), p(types.Real)),
	fn("device_group_set_immediate", types.Void, all(123), p(types.DeviceGroup), p(types.Real)),
	fn("device_one_sided_set", types.Void, all(129), p(types.Device), p(types.Boolean)),
	fn("device_operates_automatically_set", types.Void, all(130), p(types.Device), p(types.Boolean)),
	fn("device_set_never_appears_locked", types.Void, all(127), p(types.Device), p(types.Boolean)),
	fn("device_set_position", types.Void, all(132), p(types.Device), p(types.Real)),
	fn("device_set_position_immediate", types.Void, all(135), p(types.Device), p(types.Real)),
	fn("device_set_power", types.Void, all(126), p(types.Device), p(types.Real)),
	gl("display_precache_progress", types.Boolean, unknown()),
	fn("display_scenario_help", types.Void, all(252), p(types.Short)),
	fn("effect_new", types.Void, all(78), p(types.Effect), p(types.CutsceneFlag)),
	fn("effect_new_on_object_marker", types.Void, all(79), p(types.Effect), p(types.Object), p(types.String)),
	fn("fade_in", types.Void, all(86), p(types.Real), p(types.Real), p(types.Real), p(types.Short)),
	fn("fade_out", types.Void, all(87), p(types.Real), p(types.Real), p(types.Real), p(types.Short)),
	fn("flock_start", types.Void, all(113), p(types.String)),
	fn("flock_stop", types.Void, all(114), p(types.String)),
	fn("game_all_quiet", types.Boolean, all(176)),
	fn("game_difficulty_get", types.GameDifficulty, all(240)),
	fn("game_difficulty_get_real", types.GameDifficulty, all(241)),
	fn("game_is_cooperative", types.Boolean, all(243)),
	fn("game_revert", types.Void, all(178)),
	fn("game_safe_to_save", types.Boolean, all(172)),
	fn("game_safe_to_speak", types.Boolean, all(173)),
	fn("game_save", types.Void, all(174)),
	fn("game_save_no_timeout", types.Void, all(175)),
	fn("game_save_totally_unsafe", types.Void, all(171)),
	fn("game_saving", types.Boolean, all(177)),
	fn("game_skip_ticks", types.Void, all(179), p(types.Long)),
	fn("game_speed", types.Void, all(168), p(types.Real)),
	fn("game_won", types.Void, all(180)),
	fn("garbage_collect_now", types.Void, all(166)),
	fn("hud_blink_health", types.Void, all(253), p(types.Real)),
	fn("hud_blink_motion_sensor", types.Void, all(257), p(types.Real)),
	fn("hud_blink_shield", types.Void, all(255), p(types.Real)),
	fn("hud_clear_messages", types.Void, all(262)),
	fn("hud_set_help_text", types.Void, all(251), p(types.HUDMessage)),
	fn("hud_set_timer_time", types.Void, all(259), p(types.Short), p(types.Short)),
	fn("hud_set_timer_warning_time", types.Void, all(260), p(types.Short)),
	fn("hud_show_health", types.Void, all(254), p(types.Boolean)),
	fn("hud_show_motion_sensor", types.Void, all(258), p(types.Boolean)),
	fn("hud_show_shield", types.Void, all(256), p(types.Boolean)),
	fn("if", types.Passthrough, all(2), p(types.Boolean), p(types.Passthrough), opt(types.Passthrough)),
	fn("inspect", types.Void, all(22), p(types.Passthrough)),
	fn("list_count", types.Short, all(29), p(types.ObjectList)),
	fn("list_get", types.Object, all(30), p(types.ObjectList), p(types.Short)),
	fn("map_reset", types.Void, all(162)),
	fn("max", types.Real, all(12), p(types.Real), many(types.Real)),
	fn("min", types.Real, all(11), p(types.Real), many(types.Real)),
	gl("motion_sensor_show_all_units", types.Boolean, unknown()),
	fn("not", types.Boolean, all(33), p(types.Boolean)),
	fn("object_can_take_damage", types.Void, all(56), p(types.ObjectList)),
	fn("object_cannot_take_damage", types.Void, all(57), p(types.ObjectList)),
	fn("object_create", types.Void, all(47), p(types.ObjectName)),
	fn("object_create_anew", types.Void, all(49), p(types.ObjectName)),
	fn("object_create_anew_containing", types.Void, all(52), p(types.String)),
	fn("object_create_containing", types.Void, all(51), p(types.String)),
	fn("object_destroy", types.Void, all(48), p(types.Object)),
	fn("object_destroy_all", types.Void, all(54)),
	fn("object_destroy_containing", types.Void, all(53), p(types.String)),
	fn("object_pvs_activate", types.Void, all(61), p(types.Object)),
	fn("object_pvs_set_camera", types.Void, all(62), p(types.CutsceneCameraPoint)),
	fn("object_pvs_set_object", types.Void, all(60), p(types.Object)),
	fn("object_set_permutation", types.Void, all(59), p(types.Object), pup(types.String), pup(types.String)),
	fn("object_set_scale", types.Void, all(58), p(types.Object), p(types.Real), p(types.Short)),
	fn("object_set_shield", types.Void, all(66), p(types.Object), p(types.Real)),
	fn("object_teleport", types.Void, all(46), p(types.Object), p(types.CutsceneFlag)),
	fn("objects_attach", types.Void, all(63), p(types.Object), p(types.String), p(types.Object), p(types.String)),
	fn("objects_can_see_flag", types.Boolean, all(70), p(types.ObjectList), p(types.CutsceneFlag), p(types.Real)),
	fn("objects_can_see_object", types.Boolean, all(69), p(types.ObjectList), p(types.Object), p(types.Real)),
	fn("objects_detach", types.Void, all(64), p(types.Object), p(types.Object)),
	fn("objects_distance_to_flag", types.Real, all(72), p(types.ObjectList), p(types.CutsceneFlag)),
	fn("objects_distance_to_object", types.Real, all(71), p(types.ObjectList), p(types.Object)),
	fn("objects_predict", types.Void, all(55), p(types.ObjectList)),
	fn("or", types.Boolean, all(6), p(types.Boolean), many(types.Boolean)),
	fn("pause_hud_timer", types.Void, all(261), p(types.Boolean)),
	fn("physics_constants_reset", types.Void, all(165)),
	fn("physics_set_gravity", types.Void, all(164), p(types.Real)),
	fn("pin", types.Real, all(24), p(types.Real), p(types.Real), p(types.Real)),
	fn("player_action_test_accept", types.Boolean, all(311)),
	fn("player_action_test_back", types.Boolean, all(312)),
	fn("player_action_test_grenade_trigger", types.Boolean, all(308)),
	fn("player_action_test_jump", types.Boolean, all(310)),
	fn("player_action_test_primary_trigger", types.Boolean, all(307)),
	fn("player_action_test_reset", types.Void, all(306)),
	fn("player_action_test_zoom", types.Boolean, all(309)),
	fn("player_add_equipment", types.Void, all(301), p(types.Unit), p(types.StartingProfile), p(types.Boolean)),
	fn("player_camera_control", types.Boolean, all(152), p(types.Boolean)),
	fn("player_effect_set_max_rotation", types.Void, all(303), p(types.Real), p(types.Real), p(types.Real)),
	fn("player_effect_set_max_translation", types.Void, all(302), p(types.Real), p(types.Real), p(types.Real)),
	fn("player_effect_set_max_vibrate", types.Void, EngineIndices{Xbox: 304, GbxRetail: IndexNotPresent, GbxDemo: IndexNotPresent, GbxCustom: IndexNotPresent, MCCCEA: 304}, p(types.Real), p(types.Real)),
	fn("player_effect_start", types.Void, all(305), p(types.Real), p(types.Real)),
	fn("player_effect_stop", types.Void, all(313), p(types.Real)),
	fn("player_enable_input", types.Void, all(314), p(types.Boolean)),
	fn("players", types.ObjectList, all(28)),
	fn("print", types.Void, all(26), p(types.String)),
	fn("random_range", types.Short, all(31), p(types.Short), p(types.Short)),
	gl("rasterizer_far_clip_distance", types.Real, all(21)),
	gl("rasterizer_near_clip_distance", types.Real, all(20)),
	fn("real_random_range", types.Real, all(32), p(types.Real), p(types.Real)),
	fn("recording_kill", types.Void, all(141), p(types.Unit)),
	fn("recording_play", types.Void, all(138), p(types.Unit), p(types.CutsceneRecording)),
	fn("recording_play_and_delete", types.Void, all(139), p(types.Unit), p(types.CutsceneRecording)),
	fn("recording_play_and_hover", types.Void, all(140), p(types.Vehicle), p(types.CutsceneRecording)),
	fn("recording_time", types.Short, all(142), p(types.Unit)),
	fn("render_lights", types.Void, all(163), p(types.Boolean)),
	gl("rider_ejection", types.Boolean, all(14)),
	fn("scenery_animation_start", types.Void, all(118), p(types.Scenery), p(types.AnimationGraph), pup(types.String)),
	fn("scenery_animation_start_at_frame", types.Void, all(119), p(types.Scenery), p(types.AnimationGraph), pup(types.String), p(types.Short)),
	fn("scenery_get_animation_time", types.Short, all(120), p(types.Scenery)),
	fn("set", types.Passthrough, all(4), p(types.Passthrough), p(types.Passthrough)),
	fn("show_hud_timer", types.Void, all(263), p(types.Boolean)),
	fn("sleep", types.Void, all(19), p(types.Short), opt(types.Script)),
	fn("sleep_until", types.Void, all(20), p(types.Boolean), opt(types.Short)),
	fn("sound_class_set_gain", types.Void, all(104), p(types.String), p(types.Real), p(types.Short)),
	fn("sound_enable", types.Void, all(97), p(types.Boolean)),
	fn("sound_impulse_predict", types.Void, all(98), p(types.Sound)),
	fn("sound_impulse_start", types.Void, all(99), p(types.Sound), p(types.Object), p(types.Real)),
	fn("sound_impulse_stop", types.Void, all(101), p(types.Sound)),
	fn("sound_impulse_time", types.Long, all(100), p(types.Sound)),
	fn("sound_looping_predict", types.Void, all(102), p(types.LoopingSound)),
	fn("sound_looping_set_alternate", types.Void, all(106), p(types.LoopingSound), p(types.Boolean)),
	fn("sound_looping_start", types.Void, all(103), p(types.LoopingSound), p(types.Object), p(types.Real)),
	fn("sound_looping_stop", types.Void, all(105), p(types.LoopingSound)),
	gl("sound_obstruction_ratio", types.Real, unknown()),
	gl("sv_friendly_fire", types.Boolean, EngineIndices{Xbox: IndexNotPresent, GbxRetail: IndexNotPresent, GbxDemo: IndexNotPresent, GbxCustom: 44, MCCCEA: 44}),
	fn("switch_bsp", types.Void, all(167), p(types.Short)),
	gl("temporary_hud", types.Boolean, all(29)),
	fn("unit", types.Unit, all(23), p(types.Object)),
	fn("unit_can_blink", types.Void, all(337), p(types.Unit), p(types.Boolean)),
	fn("unit_close", types.Void, all(336), p(types.Unit)),
	fn("unit_custom_animation_at_frame", types.Void, all(339), p(types.Unit), p(types.AnimationGraph), pup(types.String), p(types.Boolean), p(types.Short)),
	fn("unit_enter_vehicle", types.Void, all(330), p(types.Unit), p(types.Vehicle), p(types.String)),
	fn("unit_exit_vehicle", types.Void, all(332), p(types.Unit)),
	fn("unit_get_health", types.Real, all(347), p(types.Unit)),
	fn("unit_get_shield", types.Real, all(348), p(types.Unit)),
	fn("unit_get_total_grenade_count", types.Short, all(349), p(types.Unit)),
	fn("unit_has_weapon", types.Boolean, all(350), p(types.Unit), p(types.ObjectDefinition)),
	fn("unit_impervious", types.Void, all(344), p(types.ObjectList), p(types.Boolean)),
	fn("unit_in_vehicle", types.Boolean, all(345), p(types.Unit)),
	fn("unit_is_emitting", types.Boolean, all(346), p(types.Unit)),
	fn("unit_kill", types.Void, all(342), p(types.Unit)),
	fn("unit_kill_silent", types.Void, all(343), p(types.Unit)),
	fn("unit_open", types.Void, all(335), p(types.Unit)),
	fn("unit_set_current_vitality", types.Void, all(353), p(types.Unit), p(types.Real), p(types.Real)),
	fn("unit_set_emotion", types.Void, all(352), p(types.Unit), p(types.Short)),
	fn("unit_set_enterable_by_player", types.Void, all(340), p(types.Unit), p(types.Boolean)),
	fn("unit_set_maximum_vitality", types.Void, all(354), p(types.Unit), p(types.Real), p(types.Real)),
	fn("unit_set_seat", types.Void, all(355), p(types.Unit), p(types.String)),
	fn("unit_stop_custom_animation", types.Void, all(341), p(types.Unit)),
	fn("unit_suspended", types.Void, all(338), p(types.Unit), p(types.Boolean)),
	fn("units", types.ObjectList, all(27), p(types.ObjectList)),
	fn("vehicle_hover", types.Void, all(358), p(types.Vehicle), p(types.Boolean)),
	fn("vehicle_load_magic", types.Short, all(361), p(types.Vehicle), p(types.String), p(types.ObjectList)),
	fn("vehicle_test_seat", types.Boolean, all(360), p(types.Vehicle), p(types.String), p(types.Unit)),
	fn("vehicle_test_seat_list", types.Boolean, all(359), p(types.Vehicle), p(types.String), p(types.ObjectList)),
	fn("vehicle_unload", types.Short, all(362), p(types.Vehicle), p(types.String)),
	fn("volume_return_objects", types.ObjectList, all(38), p(types.TriggerVolume)),
	fn("volume_teleport_players_not_inside", types.Void, all(39), p(types.TriggerVolume), p(types.CutsceneFlag)),
	fn("volume_test_object", types.Boolean, all(35), p(types.TriggerVolume), p(types.Object)),
	fn("volume_test_objects", types.Boolean, all(36), p(types.TriggerVolume), p(types.ObjectList)),
	fn("volume_test_objects_all", types.Boolean, all(37), p(types.TriggerVolume), p(types.ObjectList)),
	fn("wake", types.Void, all(21), p(types.Script)),
}
