/*
Package purestate provides a lawful, generic state-transition combinator for Go.

# Overview

Purestate replaces hand-threaded state variables with composable actions. An
action is a pure description of a step: it takes a state, returns the next
state and a result. Nothing runs until Run is called, so an action can be
stored, shared between goroutines, and run as many times as needed.

# Key Benefits

  - No manual threading: AndThen passes each step the state of the previous one
  - Lawful composition: Functor and Monad laws hold and are property-checked
  - Failures stay values: results carry mo.Result instead of panics or extra returns
  - Explicit instances: typeclass behaviour is a dictionary value, never hidden resolution
  - Simpler code: fewer temporaries, clearer data flow

# Quick Example

Instead of threading state by hand:

	cfg1, common := overrideCommon(cfg0, overrides.Common)
	cfg2, other := overrideNonCommon(cfg1, overrides.NonCommon)
	findings := append(common, other...)

Describe the steps and collect their findings with a monoid:

	pipeline := purestate.Collect(purestate.SliceMonoid[string](),
	    overrideCommon(overrides.Common),
	    overrideNonCommon(overrides.NonCommon),
	)

	final, findings := pipeline.Run(cfg0)

# Core Concepts

State: StateFunc[S, A] with Of, Pure, Map, AndThen and Run:

	purestate.AndThen(step1, func(a A) purestate.StateFunc[S, B] { return step2 })

Lenses: run an action against one field of a larger state:

	purestate.Zoom(commonFieldsLens, purestate.Put([]string{"email"}))

Monoid, Writer, Reader: explicit dictionaries for accumulation and environment:

	purestate.BindWriter(purestate.StringMonoid, w, f)
	purestate.BindReader(r, f).Run(env)

Result-carrying state: short-circuit a pipeline on the first failure:

	purestate.AndThenResult(parse, func(v Config) purestate.StateFunc[S, mo.Result[Config]] { ... })

Functor instances: Option, Slice, Result, Either, State, and a lawless counter-example.

Validation: ValidateFirst stops at the first failing rule; ValidateAll reports every one.

Memoization: Cache, Memoize and Fix keep the memo table in a caller-owned object.

# Available Types

Core:
  - StateFunc: the state combinator
  - Unit: result of state-only steps

Optics:
  - Lens: Get, Set, Modify, ComposeLens, Zoom, Use, Assign, Over

Accumulation and environment:
  - Monoid: SliceMonoid, StringMonoid, SumMonoid, Concat, FoldMap
  - Writer: Tell, WriterOf, MapWriter, BindWriter
  - Reader: Ask, Asks, MapReader, BindReader, Local, FromReader

Instances:
  - Functor: OptionFunctor, SliceFunctor, ResultFunctor, EitherFunctor, StateFunctor
  - DedupSliceFunctor: deliberately breaks the identity law

Validation:
  - Rule, ValidateFirst, ValidateAll, ValidationError

Memoization:
  - Cache, Memoize, Fix

Tracing:
  - RunObserved with any observability.Observer

# Checking Your Own Actions

The laws subpackage turns an action and a few generators into gopter properties:

	props := laws.StateProperties(laws.DefaultConfig(), fixture)
	props.TestingRun(t)

# Package Import

	import ps "github.com/Pure-Company/purestate"

	// Or full import
	import "github.com/Pure-Company/purestate"
*/
package purestate
