package split

import (
	"fmt"

	"github.com/sjwhitworth/golearn/base"
)

// Instances converts a dataset into a golearn grid. Every term becomes
// a float attribute and the class attribute registers the shared class
// list up front, so train and test grids encode labels identically.
func Instances(d *Dataset) (*base.DenseInstances, error) {
	if d.Len() == 0 {
		return nil, fmt.Errorf("dataset is empty")
	}
	if len(d.Terms) == 0 {
		return nil, fmt.Errorf("dataset has no terms")
	}

	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(d.Terms))
	for j, term := range d.Terms {
		specs[j] = inst.AddAttribute(base.NewFloatAttribute(term))
	}

	classAttr := base.NewCategoricalAttribute()
	classAttr.SetName("sentiment")
	for _, class := range d.Classes {
		classAttr.GetSysValFromString(class)
	}
	classSpec := inst.AddAttribute(classAttr)
	if err := inst.AddClassAttribute(classAttr); err != nil {
		return nil, fmt.Errorf("failed to mark class attribute: %v", err)
	}

	if err := inst.Extend(d.Len()); err != nil {
		return nil, fmt.Errorf("failed to allocate %d rows: %v", d.Len(), err)
	}
	for i := 0; i < d.Len(); i++ {
		for j, spec := range specs {
			inst.Set(spec, i, base.PackFloatToBytes(d.X.At(i, j)))
		}
		inst.Set(classSpec, i, classAttr.GetSysValFromString(d.Y[i]))
	}
	return inst, nil
}
