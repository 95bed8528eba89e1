// Package lightsource is the focus navigation and event propagation core of
// a 10-foot (TV style) UI engine running on [Ebitengine].
//
// It tracks a single active (focused) node in a tree of UI nodes, moves
// focus predictably through nested groups in response to directional
// input, and delivers focus, key and device status events through the
// tree with DOM-like bubble semantics and cancellation. Layout, paint and
// text shaping are left to a [Renderer].
//
// # Quick start
//
//	stage := lightsource.NewStage()
//	scene := lightsource.NewScene()
//	stage.SetScene(scene)
//
//	row := lightsource.NewBox("row")
//	row.Waypoint = lightsource.NewHorizontalWaypoint()
//	scene.Root().AddChild(row)
//	for _, name := range []string{"a", "b", "c"} {
//		row.AddChild(lightsource.NewFocusableBox(name))
//	}
//	row.Focus() // resolves to "a"
//
//	lightsource.Run(stage, nil, lightsource.DefaultRunConfig())
//
// # Waypoints
//
// A node with a [Waypoint] owns directional navigation among its focusable
// descendants. [ListWaypoint] is the built-in implementation for
// horizontal and vertical lists; lists nest, so a vertical list of
// horizontal rows gives grid-like navigation. Entering a row from above
// lands on its first element, entering it from below on its last.
//
// On a directional key, [Scene.Navigate] walks from the active node toward
// the root. The first waypoint that can move in that direction decides the
// next candidate. A list at its boundary on its own axis ends the search,
// so focus never escapes a row sideways into a neighbouring list; the
// innermost waypoint's current element is kept. Candidates hosting a waypoint are resolved down to a focusable
// leaf, which then receives focus.
//
// # Events
//
// Node callback slots (OnFocus, OnBlur, OnFocusIn, OnFocusOut, OnKeyDown,
// OnKeyUp) receive an [Event]. [Scene.Bubble] visits the starting node and
// then its ancestors, followed by scene-level and stage-level listeners
// registered with [Scene.On] and [Stage.On]. Any of them can stop the walk
// with [Event.StopPropagation]. A key down stopped with
// [Event.StopImmediatePropagation] additionally skips focus navigation.
//
// Dispatch is synchronous and single-threaded. Callbacks may change the
// tree or move focus while running.
//
// [Ebitengine]: https://ebitengine.org
package lightsource
