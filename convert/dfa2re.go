package convert

import (
	"github.com/cantor-lang/refa/automaton"
	"github.com/cantor-lang/refa/re"
)

const (
	renfaStart  = "$START"
	renfaAccept = "$ACCEPT"
)

// lnfa2renfa adds a fresh unique source $START and unique sink $ACCEPT to a,
// with a λ edge from $START to a's start and a λ edge from every one of a's
// original accepting states to $ACCEPT.
func lnfa2renfa(a *automaton.FA) (*automaton.FA, error) {
	states := append(a.States(), renfaStart, renfaAccept)
	edges := append(a.Edges(), automaton.Edge{From: renfaStart, To: a.Start(), Letter: automaton.Lambda})
	for _, accept := range a.Accepting() {
		edges = append(edges, automaton.Edge{From: accept, To: renfaAccept, Letter: automaton.Lambda})
	}
	return automaton.NewInternal(states, renfaStart, []string{renfaAccept}, edges)
}

// Lnfa2Re recovers a regular expression for a's language via generalized-NFA
// state elimination: build the renfa, label every edge with an RE (combining
// parallel edges with Plus), then splice out every internal state one at a
// time, replacing it with a new edge for every (in-edge, out-edge) pair —
// routed through the starred self-loop RE, if the spliced state had one —
// until only $START and $ACCEPT remain.
func Lnfa2Re(a *automaton.FA) (*re.RE, error) {
	renfa, err := lnfa2renfa(a)
	if err != nil {
		return nil, err
	}

	trans := make(map[string]map[string]*re.RE)
	invTrans := make(map[string]map[string]*re.RE)

	setTrans := func(from, to string, expr *re.RE) {
		if trans[from] == nil {
			trans[from] = make(map[string]*re.RE)
		}
		trans[from][to] = expr
		if invTrans[to] == nil {
			invTrans[to] = make(map[string]*re.RE)
		}
		invTrans[to][from] = expr
	}

	for _, e := range renfa.Edges() {
		var edgeRe *re.RE
		if e.Letter.IsLambda() {
			edgeRe = re.Empty()
		} else {
			edgeRe = re.Char(e.Letter.Byte())
		}

		if existing, ok := trans[e.From][e.To]; ok {
			edgeRe = re.Plus(existing, edgeRe)
		}
		setTrans(e.From, e.To, edgeRe)
	}

	internal := make(map[string]struct{})
	for _, s := range renfa.States() {
		if s != renfaStart && s != renfaAccept {
			internal[s] = struct{}{}
		}
	}

	for internalState := range internal {
		selfLoop := re.Empty()
		if loop, ok := trans[internalState][internalState]; ok {
			selfLoop = re.Star(loop)
		}

		incoming := make(map[string]*re.RE)
		for from, expr := range invTrans[internalState] {
			if from == internalState {
				continue
			}
			incoming[from] = expr
		}
		outgoing := make(map[string]*re.RE)
		for to, expr := range trans[internalState] {
			if to == internalState {
				continue
			}
			outgoing[to] = expr
		}

		for from, leftRe := range incoming {
			joined := re.Concat(leftRe, selfLoop)
			for to, rightRe := range outgoing {
				complete := re.Concat(joined, rightRe)
				if existing, ok := trans[from][to]; ok {
					complete = re.Plus(existing, complete)
				}
				setTrans(from, to, complete)
			}
		}

		delete(trans, internalState)
		delete(invTrans, internalState)
		for from := range incoming {
			delete(trans[from], internalState)
		}
		for to := range outgoing {
			delete(invTrans[to], internalState)
		}
	}

	result, ok := trans[renfaStart][renfaAccept]
	if !ok {
		panic("convert: lnfa2re: no surviving $START to $ACCEPT edge; renfa invariant violated")
	}
	return result, nil
}
