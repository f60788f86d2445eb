package spirv

import (
	"fmt"

	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

// Loaded is the result of materializing an operand: the SPIR-V lines to
// emit before the consuming instruction, and the %id those lines leave
// holding the requested view of the value.
type Loaded struct {
	Lines []string
	ID    string
}

func (l Loaded) append(line string) Loaded {
	l.Lines = append(l.Lines, line)
	return l
}

// LoadFloat materializes op (at register shift) as a %float value.
func LoadFloat(ctx *TranslationContext, op gcn.ShaderOperand, shift uint32) (Loaded, *Error) {
	return load(ctx, op, shift, KindFloat)
}

// LoadUint materializes op (at register shift) as a %uint value.
func LoadUint(ctx *TranslationContext, op gcn.ShaderOperand, shift uint32) (Loaded, *Error) {
	return load(ctx, op, shift, KindUint)
}

// LoadInt materializes op (at register shift) as a %int value.
func LoadInt(ctx *TranslationContext, op gcn.ShaderOperand, shift uint32) (Loaded, *Error) {
	return load(ctx, op, shift, KindInt)
}

func load(ctx *TranslationContext, op gcn.ShaderOperand, shift uint32, want Kind) (Loaded, *Error) {
	if op.Negate && want != KindFloat {
		return Loaded{}, ctx.Errorf(ErrUnsupportedOperandShape, "negate modifier on an integer load is not implemented")
	}

	if IsConstant(op) {
		return loadConstant(ctx, op, want)
	}
	return loadVariable(ctx, op, shift, want)
}

func loadConstant(ctx *TranslationContext, op gcn.ShaderOperand, want Kind) (Loaded, *Error) {
	native := nativeConstantKind(op)
	constID := ctx.Constants.Get(constKindFromOperandKind(native), op.Constant)
	if constID == sentinelConstID {
		return Loaded{}, ctx.Bug("constant pool miss for kind=%v bits=%#x", native, op.Constant)
	}

	if native == want {
		return Loaded{ID: constID}, nil
	}

	result := ctx.NewID()
	line := fmt.Sprintf("%%%s = %s %s %%%s", result, OpBitcast, want.spirvType(), constID)
	loaded := Loaded{ID: result}.append(line)
	return applyFloatNegate(ctx, op, want, loaded), nil
}

func loadVariable(ctx *TranslationContext, op gcn.ShaderOperand, shift uint32, want Kind) (Loaded, *Error) {
	name, native := VariableName(op, shift)
	if name == "" {
		return Loaded{}, ctx.Bug("operand type %v has no renderable variable name", op.Type)
	}

	loadID := ctx.NewID()
	loaded := Loaded{ID: loadID}.append(fmt.Sprintf("%%%s = %s %s %%%s", loadID, OpLoad, native.spirvType(), name))

	if native != want {
		castID := ctx.NewID()
		loaded = Loaded{ID: castID, Lines: loaded.Lines}.append(fmt.Sprintf("%%%s = %s %s %%%s", castID, OpBitcast, want.spirvType(), loaded.ID))
	}

	return applyFloatNegate(ctx, op, want, loaded), nil
}

// StoreValue stores valueID (already materialized as valueKind) into
// op's variable, bitcasting first if the variable's native kind differs
// -- the common case being an integer result computed for a VGPR, whose
// native view is float.
func StoreValue(ctx *TranslationContext, op gcn.ShaderOperand, shift uint32, valueKind Kind, valueID string) []string {
	name, native := VariableName(op, shift)
	if native == valueKind {
		return []string{storeU(name, valueID)}
	}
	castID := ctx.NewID()
	return []string{
		fmt.Sprintf("%%%s = %s %s %%%s", castID, OpBitcast, native.spirvType(), valueID),
		storeU(name, castID),
	}
}

func applyFloatNegate(ctx *TranslationContext, op gcn.ShaderOperand, want Kind, loaded Loaded) Loaded {
	if !op.Negate || want != KindFloat {
		return loaded
	}
	negID := ctx.NewID()
	return Loaded{ID: negID, Lines: loaded.Lines}.append(fmt.Sprintf("%%%s = %s %%float %%%s", negID, OpFNegate, loaded.ID))
}
