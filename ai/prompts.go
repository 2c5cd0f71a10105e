// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ai

import "fmt"

// Prompt texts are part of the product: they pin the providers to
// French-language, HTML-structured output the front-end renders verbatim.

const detailSystem = "Vous êtes un analyste politique et social. Votre tâche est de développer la revendication utilisateur en une thèse détaillée et contextualisée, en vous concentrant sur le problème et l'urgence, sans proposer de solution à ce stade. La réponse doit être formatée en HTML structuré selon les instructions fournies."

func detailPrompt(revendication string) string {
	return fmt.Sprintf(`
Revendication : %q

En tant qu'analyste politique et social, vous devez détailler, contextualiser et développer la revendication ci-dessus.
Présentez la comme une thèse envisagée, expliquant le problème sous-jacent, les enjeux actuels et les conséquences de son non-traitement.

INSTRUCTIONS DE FORMATAGE CRUCIALE :
1. **La réponse doit être enveloppée dans une seule balise <div> avec la classe 'ia-output'.**
2. Utilisez les balises **<h3>** pour les titres de section ('Contexte et Problématique' et 'Justification de l'Urgence') avec la classe 'ia-title'.
3. Utilisez des **<ul> ou <ol>** pour structurer l'information.
4. Mettez les **mots-clés importants** en **gras** (utilisation de <strong>).
5. N'incluez aucun code Markdown, seulement du HTML valide.

Structurez votre réponse avec les balises HTML demandées.
`, revendication)
}

const optimiseSystem = "Vous êtes un expert législatif et un réformateur, spécialisé dans la conception de solutions concrètes pour les problèmes sociaux et politiques. La réponse doit être formatée en HTML structuré selon les instructions fournies."

func optimisePrompt(detail string) string {
	return fmt.Sprintf(`
En vous basant uniquement sur l'analyse détaillée fournie ci-dessous, agissez en tant qu'expert législatif et réformateur.
Proposez une solution optimale et concrète pour résoudre le problème soulevé.
Votre solution doit prendre la forme d'un projet de loi, d'une réforme constitutionnelle, d'une abrogation, d'une destitution, d'une initiative ou d'une réforme ciblée.
Détaillez le type d'action requis et les étapes clés.

INSTRUCTIONS DE FORMATAGE CRUCIALE :
1. **La réponse doit être enveloppée dans une seule balise <div> avec la classe 'ia-output'.**
2. Utilisez les balises **<h3>** pour les titres de section ('Proposition de Solution', 'Type d'Acte' et 'Étapes de Mise en Œuvre') avec la classe 'ia-title'.
3. Utilisez des **<ul> ou <ol>** pour structurer l'information.
4. Mettez les **mots-clés importants** en **gras** (utilisation de <strong>).
5. N'incluez aucun code Markdown, seulement du HTML valide.

Structurez votre réponse avec les balises HTML demandées.

Analyse Détaillée à laquelle vous devez répondre :
---
%s
---
`, detail)
}

func imagePrompt(revendication string) string {
	return fmt.Sprintf("Crée une image symbolique de haute qualité, style art politique minimaliste, représentant le concept clé de cette revendication citoyenne: %q. Concentrez-vous sur l'impact social ou l'enjeu démocratique.", revendication)
}
