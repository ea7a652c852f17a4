// Copyright 2025 QuantGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package quantsim

import (
	"io"

	"github.com/qat-ml/quantgrad/internal/quantsim"
)

// Type aliases for public API

// OpMode is the operating mode recorded by the forward quantize op.
type OpMode = quantsim.OpMode

// Operating modes.
const (
	OpModeUpdateStats         OpMode = quantsim.OpModeUpdateStats
	OpModeOneShotQuantDequant OpMode = quantsim.OpModeOneShotQuantDequant
	OpModeQuantDequant        OpMode = quantsim.OpModeQuantDequant
	OpModePassThrough         OpMode = quantsim.OpModePassThrough
)

// AxisHandling selects which tensor axes carry per-channel encodings.
type AxisHandling = quantsim.AxisHandling

// Axis handling codes.
const (
	AxisPerTensor       AxisHandling = quantsim.AxisPerTensor
	AxisPerChannel      AxisHandling = quantsim.AxisPerChannel
	AxisLastTwoCombined AxisHandling = quantsim.AxisLastTwoCombined
)

// OpKind identifies a quantize op variant for gradient dispatch.
type OpKind = quantsim.OpKind

// Quantize op variants with registered gradients.
const (
	KindQuantize                OpKind = quantsim.KindQuantize
	KindQuantizeRecurrentParam  OpKind = quantsim.KindQuantizeRecurrentParam
	KindRangeLearning           OpKind = quantsim.KindRangeLearning
	KindRangeLearningPerChannel OpKind = quantsim.KindRangeLearningPerChannel
)

// OpInput is the positional index of each quantize op input.
type OpInput = quantsim.OpInput

// Input positions, a contract with the forward kernel.
const (
	InputTensor        OpInput = quantsim.InputTensor
	InputOpMode        OpInput = quantsim.InputOpMode
	InputQuantizerRef  OpInput = quantsim.InputQuantizerRef
	InputEncodingMin   OpInput = quantsim.InputEncodingMin
	InputEncodingMax   OpInput = quantsim.InputEncodingMax
	InputBitWidth      OpInput = quantsim.InputBitWidth
	InputUseSymmetric  OpInput = quantsim.InputUseSymmetric
	InputIsIntDataType OpInput = quantsim.InputIsIntDataType
	InputAxisHandling  OpInput = quantsim.InputAxisHandling
	InputIsTraining    OpInput = quantsim.InputIsTraining
)

// Input counts per op variant.
const (
	NumPerTensorInputs  = quantsim.NumPerTensorInputs
	NumPerChannelInputs = quantsim.NumPerChannelInputs
)

// EpsilonRange is the minimum width of an encoding range.
const EpsilonRange = quantsim.EpsilonRange

// Encoding is the scalar description of one quantization grid.
type Encoding = quantsim.Encoding

// QuantizerConfig describes how one tensor is quantized.
type QuantizerConfig = quantsim.QuantizerConfig

// Config is the root of a quantizer YAML document.
type Config = quantsim.Config

// LoadConfig reads and parses a quantizer YAML file.
func LoadConfig(path string) (Config, error) {
	return quantsim.LoadConfig(path)
}

// EncodingEntry is the JSON form of one exported encoding.
type EncodingEntry = quantsim.EncodingEntry

// EncodingDocument maps tensor names to their encoding lists.
type EncodingDocument = quantsim.EncodingDocument

// ExportVersion identifies the encoding document layout.
const ExportVersion = quantsim.ExportVersion

// NewEntry derives the exportable grid parameters from an encoding.
func NewEntry(e Encoding) EncodingEntry {
	return quantsim.NewEntry(e)
}

// WriteEncodings serializes an encoding document as indented JSON.
func WriteEncodings(w io.Writer, doc *EncodingDocument) error {
	return quantsim.WriteEncodings(w, doc)
}

// ExportEncodings writes an encoding document to a file.
func ExportEncodings(path string, doc *EncodingDocument) error {
	return quantsim.ExportEncodings(path, doc)
}

// ReadEncodings parses an encoding document.
func ReadEncodings(r io.Reader) (*EncodingDocument, error) {
	return quantsim.ReadEncodings(r)
}

// LoadEncodings reads an encoding document from a file.
func LoadEncodings(path string) (*EncodingDocument, error) {
	return quantsim.LoadEncodings(path)
}
