package psbt

import (
	"bytes"
	"encoding/binary"

	"github.com/pktcore/txcore/btcutil/util/tmap"
	"github.com/pktcore/txcore/chainhash"
	"github.com/pktcore/txcore/crypto"
	"github.com/pktcore/txcore/er"
	"github.com/pktcore/txcore/key"
	"github.com/pktcore/txcore/pktlog/log"
	"github.com/pktcore/txcore/txscript"
	"github.com/pktcore/txcore/txscript/parsescript"
	"github.com/pktcore/txcore/wire"
)

// AddTxIn appends a new input referencing (txid, vout) with the given
// sequence number, and returns its index. A matching empty input map
// is appended alongside it.
func (p *Psbt) AddTxIn(txid chainhash.Hash, vout uint32, sequence uint32) int {
	op := wire.NewOutPoint(&txid, vout)
	ti := &wire.TxIn{PreviousOutPoint: *op, Sequence: sequence}
	p.Tx.AddTxIn(ti)
	p.Inputs = append(p.Inputs, newKVMap())
	p.rebuildGlobalTx()
	return len(p.Tx.TxIn) - 1
}

// AddTxOut appends a new output and a matching empty output map,
// returning its index.
func (p *Psbt) AddTxOut(value int64, pkScript []byte) int {
	p.Tx.AddTxOut(wire.NewTxOut(value, pkScript))
	p.Outputs = append(p.Outputs, newKVMap())
	p.rebuildGlobalTx()
	return len(p.Tx.TxOut) - 1
}

var (
	errUtxoOutpointMismatch = er.InvalidArgumentType.CodeWithDetail("UtxoOutpointMismatch",
		"supplied previous transaction does not hash to this input's outpoint").Default()
	errUtxoTemplateMismatch = er.InvalidArgumentType.CodeWithDetail("UtxoTemplateMismatch",
		"scriptPubKey does not structurally match the supplied redeem script and keys").Default()
)

// UtxoTemplateArgs bundles SetTxInUtxo's optional inputs: the redeem
// (or witness) script the spend unlocks through, and the keys it's
// claimed to be controlled by.
type UtxoTemplateArgs struct {
	RedeemScript []byte
	Keys         []Bip32Origin
}

// SetTxInUtxo verifies that the given previous transaction (or, for a
// segwit spend, a bare TxOut) matches the input's prevout and that its
// scriptPubKey structurally matches the supplied redeem script and key
// set, then records WITNESS_UTXO/NON_WITNESS_UTXO, the supplied script
// (as WITNESS_SCRIPT for a bare P2WSH spend, as REDEEM_SCRIPT
// otherwise), and BIP32_DERIVATION.
func (p *Psbt) SetTxInUtxo(oracle crypto.Oracle, idx int, fullTx *wire.Transaction, bareOut *wire.TxOut, args UtxoTemplateArgs) er.R {
	op := p.Tx.TxIn[idx].PreviousOutPoint

	var spent *wire.TxOut
	if fullTx != nil {
		if fullTx.TxHash() != op.Hash {
			return errUtxoOutpointMismatch
		}
		if int(op.Index) >= len(fullTx.TxOut) {
			return er.OutOfRangeType.CodeWithDetail("VoutOutOfRange",
				"outpoint index exceeds the supplied transaction's output count").Default()
		}
		spent = fullTx.TxOut[op.Index]
	} else {
		spent = bareOut
	}
	if spent == nil {
		return er.InvalidArgumentType.CodeWithDetail("NoUtxoProvided",
			"SetTxInUtxo requires either a full transaction or a bare output").Default()
	}

	if err := checkScriptTemplate(oracle, spent.PkScript, args.RedeemScript, args.Keys); err != nil {
		return err
	}

	class := txscript.GetScriptClass(spent.PkScript)
	isSegwit := class == txscript.WitnessV0PubKeyHashTy || class == txscript.WitnessV0ScriptHashTy || class == txscript.WitnessV1TaprootTy
	if !isSegwit && class == txscript.ScriptHashTy && len(args.RedeemScript) > 0 {
		rc := txscript.GetScriptClass(args.RedeemScript)
		isSegwit = rc == txscript.WitnessV0PubKeyHashTy || rc == txscript.WitnessV0ScriptHashTy
	}

	if isSegwit {
		p.Inputs[idx].set(InputWitnessUtxo, nil, serializeTxOut(spent))
	} else {
		if fullTx == nil {
			return er.InvalidArgumentType.CodeWithDetail("LegacyNeedsFullTx",
				"a legacy (non-segwit) spend requires the full previous transaction").Default()
		}
		p.Inputs[idx].set(InputNonWitnessUtxo, nil, fullTx.SerializeNoWitness())
	}

	if len(args.RedeemScript) > 0 {
		if class == txscript.WitnessV0ScriptHashTy {
			p.Inputs[idx].set(InputWitnessScript, nil, args.RedeemScript)
		} else {
			p.Inputs[idx].set(InputRedeemScript, nil, args.RedeemScript)
		}
	}
	for _, k := range args.Keys {
		p.Inputs[idx].set(InputBip32Derivation, k.Pubkey, encodeBip32Origin(k.Fingerprint, k.Path))
	}
	return nil
}

// SetWitnessScript records WITNESS_SCRIPT directly, for the P2SH-P2WSH
// case where SetTxInUtxo records only the P2SH redeem script and the
// caller must supply the witness script alongside it.
func (p *Psbt) SetWitnessScript(idx int, witnessScript []byte) {
	p.Inputs[idx].set(InputWitnessScript, nil, witnessScript)
}

// checkScriptTemplate implements the §4.6 structural-match rules
// between a scriptPubKey, an optional redeem/witness script, and the
// key set claimed to control it.
func checkScriptTemplate(oracle crypto.Oracle, pkScript, redeem []byte, keys []Bip32Origin) er.R {
	class := txscript.GetScriptClass(pkScript)

	switch class {
	case txscript.PubKeyHashTy, txscript.WitnessV0PubKeyHashTy:
		if len(keys) > 1 {
			return errUtxoTemplateMismatch
		}
		var expectHash []byte
		if class == txscript.PubKeyHashTy {
			pops, err := parsescript.ParseScript(pkScript)
			if err != nil || len(pops) != 5 {
				return errUtxoTemplateMismatch
			}
			expectHash = pops[2].Data
		} else {
			_, prog, err := txscript.ExtractWitnessProgramInfo(pkScript)
			if err != nil {
				return err
			}
			expectHash = prog
		}
		if len(keys) == 1 {
			h := oracle.Hash160(keys[0].Pubkey)
			if !bytes.Equal(h[:], expectHash) {
				return errUtxoTemplateMismatch
			}
		}
		return nil

	case txscript.ScriptHashTy:
		pops, err := parsescript.ParseScript(pkScript)
		if err != nil || len(pops) != 3 {
			return errUtxoTemplateMismatch
		}
		expectHash := pops[1].Data
		if len(redeem) == 0 {
			return errUtxoTemplateMismatch
		}
		h := oracle.Hash160(redeem)
		if !bytes.Equal(h[:], expectHash) {
			return errUtxoTemplateMismatch
		}
		// P2SH-P2WPKH: redeem script is itself OP_0 <hash160(pubkey)>.
		if txscript.IsPayToWitnessPubKeyHash(redeem) {
			return checkScriptTemplate(oracle, redeem, nil, keys)
		}
		// P2SH-P2WSH: redeem script is OP_0 <sha256(witness script)>;
		// the witness script itself is verified by SetWitnessScript's
		// caller, so the only constraint here is the redeem hash above.
		if txscript.IsPayToWitnessScriptHash(redeem) {
			return nil
		}
		return checkKeysAppearInScript(redeem, keys)

	case txscript.WitnessV0ScriptHashTy:
		if len(redeem) == 0 {
			return errUtxoTemplateMismatch
		}
		_, prog, err := txscript.ExtractWitnessProgramInfo(pkScript)
		if err != nil {
			return err
		}
		sum := chainhash.HashH(redeem)
		if !bytes.Equal(sum[:], prog) {
			return errUtxoTemplateMismatch
		}
		return checkKeysAppearInScript(redeem, keys)

	default:
		return nil
	}
}

// checkKeysAppearInScript verifies every claimed key's pubkey appears
// among the redeem/witness script's pushed pubkeys (via the multisig
// extractor), and that the counts match exactly.
func checkKeysAppearInScript(script []byte, keys []Bip32Origin) er.R {
	if len(keys) == 0 {
		return nil
	}
	_, pubkeys, err := txscript.ExtractPubkeysFromMultisigScript(script)
	if err != nil {
		return errUtxoTemplateMismatch
	}
	if len(pubkeys) != len(keys) {
		return errUtxoTemplateMismatch
	}
	for _, k := range keys {
		found := false
		for _, pk := range pubkeys {
			if bytes.Equal(pk, k.Pubkey) {
				found = true
				break
			}
		}
		if !found {
			return errUtxoTemplateMismatch
		}
	}
	return nil
}

var errDuplicatePartialSig = er.DuplicatedType.CodeWithDetail("DuplicatePartialSig",
	"a PARTIAL_SIG already exists for this pubkey").Default()

// SetTxInSignature appends a PARTIAL_SIG entry keyed by the signer's
// compressed pubkey.
func (p *Psbt) SetTxInSignature(idx int, pubkey, sig []byte) er.R {
	if _, ok := p.Inputs[idx].get(InputPartialSig, pubkey); ok {
		return errDuplicatePartialSig
	}
	p.Inputs[idx].set(InputPartialSig, pubkey, sig)
	return nil
}

// Sign walks every input, and for each one whose BIP32_DERIVATION set
// contains priv's pubkey, computes the appropriate sighash (legacy or
// BIP143, per the recorded UTXO type) and appends a PARTIAL_SIG. It is
// a no-op for inputs that already carry a signature from this key or
// that have no matching derivation entry.
func (p *Psbt) Sign(oracle crypto.Oracle, priv *key.Privkey, grindR bool) er.R {
	pub, err := priv.Pubkey(oracle)
	if err != nil {
		return err
	}
	pubBytes := pub.Bytes()

	sigHashes := wire.NewTxSigHashes(p.Tx)

	for idx := range p.Tx.TxIn {
		origins, err := p.Bip32Derivations(idx)
		if err != nil {
			return err
		}
		matches := false
		for _, o := range origins {
			if bytes.Equal(o.Pubkey, pubBytes) {
				matches = true
				break
			}
		}
		if !matches {
			continue
		}
		if _, already := p.Inputs[idx].get(InputPartialSig, pubBytes); already {
			continue
		}

		digest, err := p.sighashForInput(idx, sigHashes)
		if err != nil {
			return err
		}

		hashType := p.SighashType(idx)
		sig, err := oracle.EcdsaSign(priv.Bytes(), digest, grindR)
		if err != nil {
			return err
		}
		sig = append(sig, byte(hashType))
		if err := p.SetTxInSignature(idx, pubBytes, sig); err != nil {
			return err
		}
	}
	return nil
}

// sighashForInput computes the signing digest for input idx, choosing
// legacy or BIP143 based on which UTXO record is present and which
// scriptCode the recorded scripts imply.
func (p *Psbt) sighashForInput(idx int, sigHashes *wire.TxSigHashes) ([]byte, er.R) {
	hashType := p.SighashType(idx)

	if wu, ok, werr := p.WitnessUtxo(idx); werr != nil {
		return nil, werr
	} else if ok {
		scriptCode, err := p.scriptCodeForWitnessInput(idx, wu.PkScript)
		if err != nil {
			return nil, err
		}
		return wire.CalcWitnessSignatureHash(scriptCode, sigHashes, hashType, p.Tx, idx, wu.Value)
	}

	nwu, ok, nerr := p.NonWitnessUtxo(idx)
	if nerr != nil {
		return nil, nerr
	}
	if !ok {
		return nil, er.InvalidStateType.CodeWithDetail("NoUtxo",
			"input has no WITNESS_UTXO or NON_WITNESS_UTXO recorded").Default()
	}
	op := p.Tx.TxIn[idx].PreviousOutPoint
	spentScript := nwu.TxOut[op.Index].PkScript
	if rs, has := p.RedeemScript(idx); has {
		spentScript = rs
	}
	return wire.CalcSignatureHash(spentScript, hashType, p.Tx, idx)
}

func (p *Psbt) scriptCodeForWitnessInput(idx int, pkScript []byte) ([]byte, er.R) {
	if ws, has := p.WitnessScript(idx); has {
		return ws, nil
	}
	if rs, has := p.RedeemScript(idx); has && txscript.IsPayToWitnessPubKeyHash(rs) {
		return txscript.PayToPubKeyHashScript(rs[2:])
	}
	if txscript.GetScriptClass(pkScript) == txscript.WitnessV0PubKeyHashTy {
		_, prog, err := txscript.ExtractWitnessProgramInfo(pkScript)
		if err != nil {
			return nil, err
		}
		return txscript.PayToPubKeyHashScript(prog)
	}
	return pkScript, nil
}

// FinalizeResult reports, per input, whether finalization succeeded.
type FinalizeResult struct {
	Finalized []bool
}

// Finalize attempts to build FINAL_SCRIPTSIG/FINAL_SCRIPTWITNESS for
// every input from its collected PARTIAL_SIG entries and scripts.
// Inputs whose template isn't recognized are left untouched; their
// slot in the result is false so callers can retry after gathering
// more signatures.
func (p *Psbt) Finalize(oracle crypto.Oracle) (*FinalizeResult, er.R) {
	res := &FinalizeResult{Finalized: make([]bool, len(p.Tx.TxIn))}
	for idx := range p.Tx.TxIn {
		ok, err := p.finalizeInput(oracle, idx)
		if err != nil {
			return nil, err
		}
		res.Finalized[idx] = ok
	}
	return res, nil
}

func (p *Psbt) spentScriptFor(idx int) ([]byte, er.R) {
	if wu, ok, err := p.WitnessUtxo(idx); err != nil {
		return nil, err
	} else if ok {
		return wu.PkScript, nil
	}
	if nwu, ok, err := p.NonWitnessUtxo(idx); err != nil {
		return nil, err
	} else if ok {
		return nwu.TxOut[p.Tx.TxIn[idx].PreviousOutPoint.Index].PkScript, nil
	}
	return nil, nil
}

func (p *Psbt) finalizeInput(oracle crypto.Oracle, idx int) (bool, er.R) {
	sigs := p.PartialSigs(idx)
	redeem, hasRedeem := p.RedeemScript(idx)
	witnessScript, hasWitnessScript := p.WitnessScript(idx)

	pkScript, err := p.spentScriptFor(idx)
	if err != nil {
		return false, err
	}
	if pkScript == nil {
		return false, nil
	}

	class := txscript.GetScriptClass(pkScript)

	switch {
	case class == txscript.PubKeyHashTy:
		for pub, sig := range sigs {
			sb, err := buildMultiPushScriptSig([][]byte{sig, []byte(pub)})
			if err != nil {
				return false, err
			}
			p.setFinal(idx, sb, nil)
			p.clearSigningFields(idx)
			return true, nil
		}
		return false, nil

	case class == txscript.WitnessV0PubKeyHashTy:
		for pub, sig := range sigs {
			p.setFinal(idx, nil, wire.TxWitness{sig, []byte(pub)})
			p.clearSigningFields(idx)
			return true, nil
		}
		return false, nil

	case class == txscript.ScriptHashTy && hasRedeem && txscript.IsPayToWitnessPubKeyHash(redeem):
		for pub, sig := range sigs {
			sb, err := buildMultiPushScriptSig([][]byte{redeem})
			if err != nil {
				return false, err
			}
			p.setFinal(idx, sb, wire.TxWitness{sig, []byte(pub)})
			p.clearSigningFields(idx)
			return true, nil
		}
		return false, nil

	case class == txscript.ScriptHashTy && hasRedeem && txscript.IsMultiSigScript(oracle, redeem):
		return p.finalizeBareMultisig(idx, redeem, sigs)

	case class == txscript.ScriptHashTy && hasRedeem && txscript.IsPayToWitnessScriptHash(redeem) && hasWitnessScript:
		return p.finalizeWitnessMultisig(idx, witnessScript, sigs, redeem)

	case class == txscript.WitnessV0ScriptHashTy && hasWitnessScript:
		return p.finalizeWitnessMultisig(idx, witnessScript, sigs, nil)

	default:
		return false, nil
	}
}

// orderedMultisigSigs returns, in script order, the signatures whose
// pubkey is pushed in script, stopping once m signatures are found.
func orderedMultisigSigs(script []byte, sigs map[string][]byte) ([][]byte, er.R) {
	m, pubkeys, err := txscript.ExtractPubkeysFromMultisigScript(script)
	if err != nil {
		return nil, nil
	}
	ordered := make([][]byte, 0, m)
	for _, pk := range pubkeys {
		if sig, ok := sigs[string(pk)]; ok {
			ordered = append(ordered, sig)
		}
		if len(ordered) == m {
			break
		}
	}
	if len(ordered) < m {
		return nil, nil
	}
	return ordered, nil
}

func (p *Psbt) finalizeBareMultisig(idx int, script []byte, sigs map[string][]byte) (bool, er.R) {
	ordered, err := orderedMultisigSigs(script, sigs)
	if err != nil {
		return false, err
	}
	if ordered == nil {
		return false, nil
	}
	items := make([][]byte, 0, len(ordered)+2)
	items = append(items, nil)
	for _, s := range ordered {
		items = append(items, s)
	}
	items = append(items, script)
	sb, err := buildMultiPushScriptSig(items)
	if err != nil {
		return false, err
	}
	p.setFinal(idx, sb, nil)
	p.clearSigningFields(idx)
	return true, nil
}

func (p *Psbt) finalizeWitnessMultisig(idx int, script []byte, sigs map[string][]byte, p2shRedeem []byte) (bool, er.R) {
	ordered, err := orderedMultisigSigs(script, sigs)
	if err != nil {
		return false, err
	}
	if ordered == nil {
		return false, nil
	}
	witness := make(wire.TxWitness, 0, len(ordered)+2)
	witness = append(witness, nil)
	witness = append(witness, ordered...)
	witness = append(witness, script)

	var scriptSig []byte
	if p2shRedeem != nil {
		scriptSig, err = buildMultiPushScriptSig([][]byte{p2shRedeem})
		if err != nil {
			return false, err
		}
	}
	p.setFinal(idx, scriptSig, witness)
	p.clearSigningFields(idx)
	return true, nil
}

func (p *Psbt) setFinal(idx int, scriptSig []byte, witness wire.TxWitness) {
	if scriptSig != nil {
		p.Inputs[idx].set(InputFinalScriptSig, nil, scriptSig)
	}
	if witness != nil {
		s := wire.NewSerializer(0)
		witness.Serialize(s)
		p.Inputs[idx].set(InputFinalScriptWitness, nil, s.Bytes())
	}
}

func (p *Psbt) clearSigningFields(idx int) {
	for pub := range p.PartialSigs(idx) {
		p.Inputs[idx].delete(InputPartialSig, []byte(pub))
	}
	origins, _ := p.Bip32Derivations(idx)
	p.Inputs[idx].delete(InputRedeemScript, nil)
	p.Inputs[idx].delete(InputWitnessScript, nil)
	p.Inputs[idx].delete(InputSighashType, nil)
	for _, o := range origins {
		p.Inputs[idx].delete(InputBip32Derivation, o.Pubkey)
	}
}

// buildMultiPushScriptSig builds a push-only scriptSig from a list of
// stack items, treating a nil item as OP_0 (the multisig off-by-one
// dummy element).
func buildMultiPushScriptSig(items [][]byte) ([]byte, er.R) {
	var buf bytes.Buffer
	for _, item := range items {
		if item == nil {
			buf.WriteByte(0x00)
			continue
		}
		appendCanonicalPush(&buf, item)
	}
	return buf.Bytes(), nil
}

func appendCanonicalPush(buf *bytes.Buffer, data []byte) {
	n := len(data)
	switch {
	case n == 0:
		buf.WriteByte(0x00)
	case n <= 75:
		buf.WriteByte(byte(n))
		buf.Write(data)
	case n <= 0xff:
		buf.WriteByte(0x4c)
		buf.WriteByte(byte(n))
		buf.Write(data)
	case n <= 0xffff:
		buf.WriteByte(0x4d)
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(n))
		buf.Write(b[:])
		buf.Write(data)
	default:
		buf.WriteByte(0x4e)
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(n))
		buf.Write(b[:])
		buf.Write(data)
	}
}

var (
	errJoinMismatch = er.InvalidArgumentType.CodeWithDetail("JoinMismatch",
		"Join requires identical global VERSION records").Default()
	errCombineMismatch = er.InvalidArgumentType.CodeWithDetail("CombineMismatch",
		"Combine requires both PSBTs to describe the same unsigned transaction").Default()
	errJoinConflict = er.DuplicatedType.CodeWithDetail("JoinConflict",
		"Join found a conflicting input for the same outpoint").Default()
)

// Join concatenates other's inputs/outputs (and their maps) onto p.
// Both PSBTs must carry the identical global VERSION record — Join is
// for building one transaction out of independently authored
// input/output sets, not for merging views of the same one (that's
// Combine). An input of other spending an outpoint p already spends is
// an error unless ignoreDuplicate is set, in which case p's existing
// entry wins and other's is discarded. Other's outputs are always
// appended. On any error p is left unmodified.
func (p *Psbt) Join(other *Psbt, ignoreDuplicate bool) er.R {
	pv, _ := p.Global.get(GlobalVersion, nil)
	ov, _ := other.Global.get(GlobalVersion, nil)
	if !bytes.Equal(pv, ov) {
		return errJoinMismatch
	}

	existingOps := map[chainhash.Hash]map[uint32]bool{}
	for _, ti := range p.Tx.TxIn {
		op := ti.PreviousOutPoint
		if existingOps[op.Hash] == nil {
			existingOps[op.Hash] = map[uint32]bool{}
		}
		existingOps[op.Hash][op.Index] = true
	}
	for _, ti := range other.Tx.TxIn {
		op := ti.PreviousOutPoint
		if existingOps[op.Hash][op.Index] && !ignoreDuplicate {
			return errJoinConflict
		}
	}
	for _, ti := range other.Tx.TxIn {
		op := ti.PreviousOutPoint
		if existingOps[op.Hash] != nil && existingOps[op.Hash][op.Index] {
			if !ignoreDuplicate {
				return errJoinConflict
			}
			log.Debugf("psbt: Join dropping duplicate input %s:%d, keeping existing entry", op.Hash, op.Index)
			continue
		}
		p.Tx.AddTxIn(&wire.TxIn{PreviousOutPoint: op, Sequence: ti.Sequence})
		p.Inputs = append(p.Inputs, other.inputMapFor(op))
	}

	for i, to := range other.Tx.TxOut {
		p.Tx.AddTxOut(to)
		p.Outputs = append(p.Outputs, other.Outputs[i])
	}

	p.rebuildGlobalTx()
	return nil
}

// inputMapFor returns the kvMap belonging to the input spending op, or
// an empty map if op isn't one of this PSBT's inputs.
func (p *Psbt) inputMapFor(op wire.OutPoint) *kvMap {
	for i, ti := range p.Tx.TxIn {
		if ti.PreviousOutPoint == op {
			return p.Inputs[i]
		}
	}
	return newKVMap()
}

// Combine merges other into p field-by-field, requiring both to
// describe the exact same unsigned transaction (by txid). Unlike
// Join, every field present in other and absent in p is adopted;
// fields present in both are left as p's (first-writer-wins, matching
// the UNSIGNED_TX invariant that both sides already agree on the
// transaction shape).
func (p *Psbt) Combine(other *Psbt) er.R {
	if p.Tx.TxHash() != other.Tx.TxHash() {
		return errCombineMismatch
	}
	if len(p.Inputs) != len(other.Inputs) || len(p.Outputs) != len(other.Outputs) {
		return errCombineMismatch
	}
	for i := range p.Inputs {
		mergeKVMap(p.Inputs[i], other.Inputs[i])
	}
	for i := range p.Outputs {
		mergeKVMap(p.Outputs[i], other.Outputs[i])
	}
	mergeKVMap(p.Global, other.Global)
	return nil
}

func mergeKVMap(dst, src *kvMap) {
	for _, k := range tmapKeys(src) {
		if _, ok := dst.get(k[0], k[1:]); ok {
			continue
		}
		v, _ := src.get(k[0], k[1:])
		dst.set(k[0], k[1:], v)
	}
}

func tmapKeys(m *kvMap) [][]byte {
	out := make([][]byte, 0)
	for _, k := range tmap.Keys(m.m) {
		out = append(out, *k)
	}
	return out
}

// Extract requires every input to be finalized and returns the
// broadcastable transaction built from the FINAL_* records.
func (p *Psbt) Extract() (*wire.Transaction, er.R) {
	out := p.Tx.Copy()
	for idx, in := range out.TxIn {
		ss, hasSS := p.Inputs[idx].get(InputFinalScriptSig, nil)
		wb, hasW := p.Inputs[idx].get(InputFinalScriptWitness, nil)
		if !hasSS && !hasW {
			return nil, er.InvalidStateType.CodeWithDetail("NotFinalized",
				"every input must be finalized before Extract").Default()
		}
		if hasSS {
			in.SignatureScript = ss
		}
		if hasW {
			d := wire.NewDeserializer(wb)
			wit, err := wire.ReadTxWitness(d)
			if err != nil {
				return nil, err
			}
			in.Witness = wit
		}
	}
	return out, nil
}
