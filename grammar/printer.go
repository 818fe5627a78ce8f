package grammar

import (
	"fmt"
	"strings"
)

// String renders the model in canonical form: single spaces around
// "|", "~", "+" and "=", "tag=phen" pairs without spaces, and a
// formatted model reparses to an equal tree.
func (m *Model) String() string {
	var b strings.Builder
	b.WriteString(m.Outcome.String())
	if len(m.Conditions) > 0 {
		parts := make([]string, len(m.Conditions))
		for i, c := range m.Conditions {
			parts[i] = c.String()
		}
		b.WriteString(" | ")
		b.WriteString(strings.Join(parts, ", "))
	}
	b.WriteString(" ~ ")
	parts := make([]string, len(m.Predictors))
	for i, t := range m.Predictors {
		parts[i] = t.String()
	}
	b.WriteString(strings.Join(parts, " + "))
	return b.String()
}

func (o *Outcome) String() string {
	if o.Single != nil {
		return o.Single.String()
	}
	parts := make([]string, len(o.Group))
	for i, t := range o.Group {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (t *TaggedPhenotype) String() string {
	return t.Tag + "=" + t.Phen.Name
}

func (c *Condition) String() string {
	if c.Level != nil {
		return fmt.Sprintf("%s = %d", c.Subject, *c.Level)
	}
	return c.Subject.String()
}

func (v *Variable) String() string {
	if v.Genotype != nil {
		return v.Genotype.String()
	}
	return v.Phenotype.String()
}

func (p *Phenotype) String() string {
	return p.Name
}

func (g *Genotype) String() string {
	return "g(" + g.Variant + ")"
}

func (t *Term) String() string {
	switch {
	case t.SNPs:
		return "SNPs"
	case t.Interaction != nil:
		return t.Interaction.String()
	case t.Genotype != nil:
		return t.Genotype.String()
	case t.Factor != nil:
		return t.Factor.String()
	case t.Log != nil:
		return t.Log.String()
	case t.Pow != nil:
		return t.Pow.String()
	case t.Phenotype != nil:
		return t.Phenotype.String()
	}
	return ""
}

func (f *Factor) String() string {
	return "factor(" + f.Phen.Name + ")" + aliasSuffix(f.Alias)
}

func (l *Log) String() string {
	return l.Func + "(" + l.Phen.Name + ")" + aliasSuffix(l.Alias)
}

func (p *Pow) String() string {
	return fmt.Sprintf("pow(%s, %d)%s", p.Phen.Name, p.Power, aliasSuffix(p.Alias))
}

func (i *Interaction) String() string {
	parts := make([]string, len(i.Members))
	for n, m := range i.Members {
		parts[n] = m.String()
	}
	return strings.Join(parts, " * ") + aliasSuffix(i.Alias)
}

func (m *InteractionMember) String() string {
	switch {
	case m.Genotype != nil:
		return m.Genotype.String()
	case m.Factor != nil:
		return m.Factor.String()
	case m.Phenotype != nil:
		return m.Phenotype.String()
	}
	return ""
}

func (f *FactorRef) String() string {
	return "factor(" + f.Phen.Name + ")"
}

func aliasSuffix(alias *string) string {
	if alias == nil {
		return ""
	}
	return " as " + *alias
}
